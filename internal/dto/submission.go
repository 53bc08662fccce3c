package dto

// CreateSubmissionRequest is the submitted solution payload.
type CreateSubmissionRequest struct {
	AssignmentID string `json:"assignmentId"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	PDFLink      string `json:"pdfLink"`
	Note         string `json:"note"`
}

// GradeSubmissionRequest is what an examiner posts. Field names match the
// legacy client payload.
type GradeSubmissionRequest struct {
	ExaminMarks int    `json:"examinMarks"`
	Feedback    string `json:"feedback"`
}
