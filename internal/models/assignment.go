package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is a study task published by a user. The email field declares
// the owner; mutations compare it against the authenticated identity.
type Assignment struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string              `bson:"title,omitempty" json:"title,omitempty"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Thumbnail   string              `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Marks       int                 `bson:"marks,omitempty" json:"marks,omitempty"`
	DueDate     string              `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Level       string              `bson:"level,omitempty" json:"level,omitempty"`
	Features    bool                `bson:"features" json:"features"`
	Email       string              `bson:"email,omitempty" json:"email,omitempty"`
	UserID      *primitive.ObjectID `bson:"userId" json:"userId"`
	UpdateAt    time.Time           `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
}

// AssignmentFilter captures the browse query: an optional level tag plus
// zero-based page and page size.
type AssignmentFilter struct {
	Level string
	Page  int
	Size  int
}
