package dto

import "github.com/studyhive/studyhive-api/internal/models"

// CreateAssignmentRequest is the published assignment payload.
type CreateAssignmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Marks       int    `json:"marks"`
	DueDate     string `json:"dueDate"`
	Level       string `json:"level"`
	Features    bool   `json:"features"`
	Email       string `json:"email"`
}

// UpdateAssignmentRequest carries a partial update; only non-nil fields are
// written, everything else on the stored document persists.
type UpdateAssignmentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Marks       *int    `json:"marks"`
	DueDate     *string `json:"dueDate"`
	Level       *string `json:"level"`
	Features    *bool   `json:"features"`
}

// ListAssignmentsResponse pairs a page of assignments with the collection's
// estimated total. The count is intentionally independent of the level
// filter; the pagination UI relies on it.
type ListAssignmentsResponse struct {
	Result []models.Assignment `json:"result"`
	Count  int64               `json:"count"`
}
