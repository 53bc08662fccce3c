package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Submission is a submitted solution awaiting grading. Status stays false
// until an examiner grades it, after which it is true forever.
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AssignmentID primitive.ObjectID `bson:"assignmentId,omitempty" json:"assignmentId,omitempty"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	PDFLink      string             `bson:"pdfLink,omitempty" json:"pdfLink,omitempty"`
	Note         string             `bson:"note,omitempty" json:"note,omitempty"`
	Status       bool               `bson:"status" json:"status"`
	GivenMarks   int                `bson:"given_marks,omitempty" json:"given_marks,omitempty"`
	Feedback     string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}
