package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/models"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
)

type mockSubmissionRepo struct {
	submissions map[primitive.ObjectID]*models.Submission
}

func newMockSubmissionRepo() *mockSubmissionRepo {
	return &mockSubmissionRepo{submissions: make(map[primitive.ObjectID]*models.Submission)}
}

func (m *mockSubmissionRepo) ListPending(ctx context.Context) ([]models.Submission, error) {
	var result []models.Submission
	for _, s := range m.submissions {
		if !s.Status {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSubmissionRepo) ListBySubmitter(ctx context.Context, email string) ([]models.Submission, error) {
	var result []models.Submission
	for _, s := range m.submissions {
		if s.Email == email {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSubmissionRepo) Create(ctx context.Context, submission *models.Submission) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copy := *submission
	copy.ID = id
	m.submissions[id] = &copy
	return id, nil
}

func (m *mockSubmissionRepo) Grade(ctx context.Context, id primitive.ObjectID, marks int, feedback string) (int64, int64, error) {
	s, ok := m.submissions[id]
	if !ok {
		return 0, 0, nil
	}
	if s.GivenMarks == marks && s.Feedback == feedback && s.Status {
		return 1, 0, nil
	}
	s.GivenMarks = marks
	s.Feedback = feedback
	s.Status = true
	return 1, 1, nil
}

func TestCreateSubmissionStartsPending(t *testing.T) {
	repo := newMockSubmissionRepo()
	svc := NewSubmissionService(repo, nil)

	assignmentID := primitive.NewObjectID()
	result, err := svc.Create(context.Background(), dto.CreateSubmissionRequest{
		AssignmentID: assignmentID.Hex(),
		Email:        "a@x.com",
		Note:         "my solution",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.InsertedID)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.False(t, pending[0].Status)
	assert.Equal(t, assignmentID, pending[0].AssignmentID)
}

func TestCreateSubmissionInvalidAssignmentID(t *testing.T) {
	svc := NewSubmissionService(newMockSubmissionRepo(), nil)

	_, err := svc.Create(context.Background(), dto.CreateSubmissionRequest{AssignmentID: "bogus"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidID.Code, appErrors.FromError(err).Code)
}

func TestGradeRemovesFromPending(t *testing.T) {
	repo := newMockSubmissionRepo()
	svc := NewSubmissionService(repo, nil)

	created, err := svc.Create(context.Background(), dto.CreateSubmissionRequest{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Grade(context.Background(), created.InsertedID, dto.GradeSubmissionRequest{ExaminMarks: 90, Feedback: "ok"})
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestGradeIsIdempotent(t *testing.T) {
	repo := newMockSubmissionRepo()
	svc := NewSubmissionService(repo, nil)

	created, err := svc.Create(context.Background(), dto.CreateSubmissionRequest{Email: "a@x.com"})
	require.NoError(t, err)

	first, err := svc.Grade(context.Background(), created.InsertedID, dto.GradeSubmissionRequest{ExaminMarks: 90, Feedback: "ok"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ModifiedCount)

	second, err := svc.Grade(context.Background(), created.InsertedID, dto.GradeSubmissionRequest{ExaminMarks: 90, Feedback: "ok"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.MatchedCount)
	assert.Equal(t, int64(0), second.ModifiedCount)

	mine, err := svc.ListMine(context.Background(), "a@x.com", "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].Status)
	assert.Equal(t, 90, mine[0].GivenMarks)
	assert.Equal(t, "ok", mine[0].Feedback)
}

func TestGradeInvalidID(t *testing.T) {
	svc := NewSubmissionService(newMockSubmissionRepo(), nil)

	_, err := svc.Grade(context.Background(), "not-hex", dto.GradeSubmissionRequest{ExaminMarks: 50})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidID.Code, appErrors.FromError(err).Code)
}

func TestListMineSubmissionsOwnershipGate(t *testing.T) {
	repo := newMockSubmissionRepo()
	svc := NewSubmissionService(repo, nil)

	_, err := svc.Create(context.Background(), dto.CreateSubmissionRequest{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.ListMine(context.Background(), "a@x.com", "b@x.com")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, appErrors.FromError(err).Status)

	mine, err := svc.ListMine(context.Background(), "a@x.com", "a@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
