package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/models"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
)

const (
	defaultPageSize = 10
)

type assignmentRepository interface {
	List(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Assignment, error)
	ListByOwner(ctx context.Context, email string) ([]models.Assignment, error)
	ListFeatured(ctx context.Context) ([]models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type assignmentUserLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AssignmentService implements the assignment browse/publish/mutate flows.
type AssignmentService struct {
	repo   assignmentRepository
	users  assignmentUserLookup
	logger *zap.Logger
}

// NewAssignmentService creates an instance of AssignmentService.
func NewAssignmentService(repo assignmentRepository, users assignmentUserLookup, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{repo: repo, users: users, logger: logger}
}

// List returns one page of assignments and the estimated collection total.
func (s *AssignmentService) List(ctx context.Context, filter models.AssignmentFilter) (*dto.ListAssignmentsResponse, error) {
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Size <= 0 {
		filter.Size = defaultPageSize
	}

	assignments, count, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}

	return &dto.ListAssignmentsResponse{Result: assignments, Count: count}, nil
}

// Get returns a single assignment by its hex id.
func (s *AssignmentService) Get(ctx context.Context, idHex string) (*models.Assignment, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidID, "invalid assignment id")
	}

	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}

	return assignment, nil
}

// Create inserts a new assignment. The user reference is resolved from the
// creator email; when no user document matches, the reference is stored as
// null. The lookup and the insert are not transactional.
func (s *AssignmentService) Create(ctx context.Context, req dto.CreateAssignmentRequest, creatorEmail string) (*dto.InsertResult, error) {
	ownerEmail := req.Email
	if ownerEmail == "" {
		ownerEmail = creatorEmail
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Marks:       req.Marks,
		DueDate:     req.DueDate,
		Level:       req.Level,
		Features:    req.Features,
		Email:       ownerEmail,
		UpdateAt:    time.Now().UTC(),
	}

	if creatorEmail != "" {
		user, err := s.users.FindByEmail(ctx, creatorEmail)
		switch {
		case err == nil:
			assignment.UserID = &user.ID
		case errors.Is(err, mongo.ErrNoDocuments):
			// No matching user; the reference stays null.
		default:
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve user")
		}
	}

	id, err := s.repo.Create(ctx, assignment)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}

	return &dto.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

// ListMine returns the caller's own assignments. The query email must match
// the token email; a mismatch is rejected with 401 on this route.
func (s *AssignmentService) ListMine(ctx context.Context, tokenEmail, queryEmail string) ([]models.Assignment, error) {
	if !OwnerAllowed(tokenEmail, queryEmail) {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unauthorized")
	}

	assignments, err := s.repo.ListByOwner(ctx, queryEmail)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return assignments, nil
}

// ListFeatured returns the spotlighted assignments.
func (s *AssignmentService) ListFeatured(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return assignments, nil
}

// Update applies a partial assignment update. Both the query email and the
// caller-supplied record owner email must match the token email. The owner
// email is taken from the request as-is and is not re-derived from the
// stored document.
func (s *AssignmentService) Update(ctx context.Context, idHex string, req dto.UpdateAssignmentRequest, tokenEmail, queryEmail, recordOwnerEmail string) (*dto.UpdateResult, error) {
	if !OwnerAllowed(tokenEmail, queryEmail) || !OwnerAllowed(tokenEmail, recordOwnerEmail) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "forbidden")
	}

	return s.applyUpdate(ctx, idHex, req)
}

// UpdateOpen is the unauthenticated partial update variant.
func (s *AssignmentService) UpdateOpen(ctx context.Context, idHex string, req dto.UpdateAssignmentRequest) (*dto.UpdateResult, error) {
	return s.applyUpdate(ctx, idHex, req)
}

func (s *AssignmentService) applyUpdate(ctx context.Context, idHex string, req dto.UpdateAssignmentRequest) (*dto.UpdateResult, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidID, "invalid assignment id")
	}

	fields := bson.M{"updateAt": time.Now().UTC()}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Thumbnail != nil {
		fields["thumbnail"] = *req.Thumbnail
	}
	if req.Marks != nil {
		fields["marks"] = *req.Marks
	}
	if req.DueDate != nil {
		fields["dueDate"] = *req.DueDate
	}
	if req.Level != nil {
		fields["level"] = *req.Level
	}
	if req.Features != nil {
		fields["features"] = *req.Features
	}

	matched, modified, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update assignment")
	}

	return &dto.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}

// Delete removes one of the caller's assignments. The query email must match
// the token email and the caller-supplied owner email must match the query
// email; mismatches are rejected with 401 on this route.
func (s *AssignmentService) Delete(ctx context.Context, idHex, tokenEmail, queryEmail, ownerEmail string) (*dto.DeleteResult, error) {
	if !OwnerAllowed(tokenEmail, queryEmail) || !OwnerAllowed(queryEmail, ownerEmail) {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unauthorized")
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidID, "invalid assignment id")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete assignment")
	}

	return &dto.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
