package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/models"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
)

type userRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error)
}

// UserService implements the user profile flows.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// Create records a user at first sign-in. Email presence is the only
// validation; uniqueness is not enforced.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.InsertResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	return &dto.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

// Get returns a user by its hex id.
func (s *UserService) Get(ctx context.Context, idHex string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidID, "invalid user id")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}

	return user, nil
}

// Update applies a partial profile update. The query email must match the
// token email; a mismatch is rejected with 403.
func (s *UserService) Update(ctx context.Context, idHex string, req dto.UpdateUserRequest, tokenEmail, queryEmail string) (*dto.UpdateResult, error) {
	if !OwnerAllowed(tokenEmail, queryEmail) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "forbidden")
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidID, "invalid user id")
	}

	fields := bson.M{"updatedAt": time.Now().UTC()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.PhotoURL != nil {
		fields["photoURL"] = *req.PhotoURL
	}

	matched, modified, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user")
	}

	return &dto.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}, nil
}
