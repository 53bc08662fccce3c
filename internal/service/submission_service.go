package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/models"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
)

type submissionRepository interface {
	ListPending(ctx context.Context) ([]models.Submission, error)
	ListBySubmitter(ctx context.Context, email string) ([]models.Submission, error)
	Create(ctx context.Context, submission *models.Submission) (primitive.ObjectID, error)
	Grade(ctx context.Context, id primitive.ObjectID, marks int, feedback string) (int64, int64, error)
}

// SubmissionService implements the submission and grading flows.
type SubmissionService struct {
	repo   submissionRepository
	logger *zap.Logger
}

// NewSubmissionService creates an instance of SubmissionService.
func NewSubmissionService(repo submissionRepository, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{repo: repo, logger: logger}
}

// ListPending returns every ungraded submission. The route is the examiner
// work queue and carries no ownership check.
func (s *SubmissionService) ListPending(ctx context.Context) ([]models.Submission, error) {
	submissions, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return submissions, nil
}

// Create records a new submission in the pending state.
func (s *SubmissionService) Create(ctx context.Context, req dto.CreateSubmissionRequest) (*dto.InsertResult, error) {
	submission := &models.Submission{
		Title:   req.Title,
		Email:   req.Email,
		PDFLink: req.PDFLink,
		Note:    req.Note,
		Status:  false,
	}

	if req.AssignmentID != "" {
		assignmentID, err := primitive.ObjectIDFromHex(req.AssignmentID)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrInvalidID, "invalid assignment id")
		}
		submission.AssignmentID = assignmentID
	}

	id, err := s.repo.Create(ctx, submission)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create submission")
	}

	return &dto.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

// Grade writes marks and feedback and marks the submission graded. Any
// caller with the route may grade any submission; this is the instructor
// surface, not an oversight. Repeating the call with identical values leaves
// the stored fields unchanged.
func (s *SubmissionService) Grade(ctx context.Context, idHex string, req dto.GradeSubmissionRequest) (*dto.UpdateResult, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidID, "invalid submission id")
	}

	matched, modified, err := s.repo.Grade(ctx, id, req.ExaminMarks, req.Feedback)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to grade submission")
	}

	return &dto.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}

// ListMine returns the caller's own submissions. The query email must match
// the token email; a mismatch is rejected with 403 on this route.
func (s *SubmissionService) ListMine(ctx context.Context, tokenEmail, queryEmail string) ([]models.Submission, error) {
	if !OwnerAllowed(tokenEmail, queryEmail) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "forbidden")
	}

	submissions, err := s.repo.ListBySubmitter(ctx, queryEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return submissions, nil
}
