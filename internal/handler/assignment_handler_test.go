package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/middleware"
	"github.com/studyhive/studyhive-api/internal/models"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
	"github.com/studyhive/studyhive-api/pkg/response"
)

type assignmentServiceMock struct {
	listResp    *dto.ListAssignmentsResponse
	listFilter  models.AssignmentFilter
	getResp     *models.Assignment
	getErr      error
	mineErr     error
	updateErr   error
	deleteErr   error
	tokenEmail  string
	queryEmail  string
	ownerEmail  string
	deleteID    string
}

func (m *assignmentServiceMock) List(ctx context.Context, filter models.AssignmentFilter) (*dto.ListAssignmentsResponse, error) {
	m.listFilter = filter
	if m.listResp != nil {
		return m.listResp, nil
	}
	return &dto.ListAssignmentsResponse{Result: []models.Assignment{}}, nil
}

func (m *assignmentServiceMock) Get(ctx context.Context, idHex string) (*models.Assignment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResp, nil
}

func (m *assignmentServiceMock) Create(ctx context.Context, req dto.CreateAssignmentRequest, creatorEmail string) (*dto.InsertResult, error) {
	m.queryEmail = creatorEmail
	return &dto.InsertResult{Acknowledged: true, InsertedID: "656f000000000000000000aa"}, nil
}

func (m *assignmentServiceMock) ListMine(ctx context.Context, tokenEmail, queryEmail string) ([]models.Assignment, error) {
	m.tokenEmail = tokenEmail
	m.queryEmail = queryEmail
	if m.mineErr != nil {
		return nil, m.mineErr
	}
	return []models.Assignment{{Email: queryEmail}}, nil
}

func (m *assignmentServiceMock) ListFeatured(ctx context.Context) ([]models.Assignment, error) {
	return []models.Assignment{}, nil
}

func (m *assignmentServiceMock) Update(ctx context.Context, idHex string, req dto.UpdateAssignmentRequest, tokenEmail, queryEmail, recordOwnerEmail string) (*dto.UpdateResult, error) {
	m.tokenEmail = tokenEmail
	m.queryEmail = queryEmail
	m.ownerEmail = recordOwnerEmail
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return &dto.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *assignmentServiceMock) UpdateOpen(ctx context.Context, idHex string, req dto.UpdateAssignmentRequest) (*dto.UpdateResult, error) {
	return &dto.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *assignmentServiceMock) Delete(ctx context.Context, idHex, tokenEmail, queryEmail, ownerEmail string) (*dto.DeleteResult, error) {
	m.deleteID = idHex
	m.tokenEmail = tokenEmail
	m.queryEmail = queryEmail
	m.ownerEmail = ownerEmail
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	return &dto.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func TestAssignmentListParsesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &assignmentServiceMock{}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/assignments?level=hard&page=2&size=5", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hard", mock.listFilter.Level)
	assert.Equal(t, 2, mock.listFilter.Page)
	assert.Equal(t, 5, mock.listFilter.Size)
}

func TestAssignmentGetFailureIsInBand(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &assignmentServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "assignment not found")}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/assignment/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope response.FailureEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "assignment not found", envelope.Error)
}

func TestListMineWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAssignmentHandler(&assignmentServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/my-assignment?email=a@x.com", nil)

	h.ListMine(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListMineForwardsOwnershipDenial(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &assignmentServiceMock{mineErr: appErrors.ErrUnauthorized}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/my-assignment?email=b@x.com", nil)
	c.Set(middleware.ContextUserKey, &models.TokenClaims{Email: "a@x.com"})

	h.ListMine(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "a@x.com", mock.tokenEmail)
	assert.Equal(t, "b@x.com", mock.queryEmail)
}

func TestUpdateForwardsBothOwnerParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &assignmentServiceMock{}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := strings.NewReader(`{"title":"T"}`)
	c.Request = httptest.NewRequest(http.MethodPatch, "/update-assignment/656f000000000000000000aa?email=a@x.com&productEmail=a@x.com", body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "656f000000000000000000aa"}}
	c.Set(middleware.ContextUserKey, &models.TokenClaims{Email: "a@x.com"})

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", mock.tokenEmail)
	assert.Equal(t, "a@x.com", mock.queryEmail)
	assert.Equal(t, "a@x.com", mock.ownerEmail)
}

func TestUpdateForwardsForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &assignmentServiceMock{updateErr: appErrors.ErrForbidden}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/update-assignment/656f000000000000000000aa?email=b@x.com&productEmail=b@x.com", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "656f000000000000000000aa"}}
	c.Set(middleware.ContextUserKey, &models.TokenClaims{Email: "a@x.com"})

	h.Update(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteForwardsParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &assignmentServiceMock{}
	h := NewAssignmentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/delete-my-assign/656f000000000000000000aa?email=a@x.com&assemail=a@x.com", nil)
	c.Params = gin.Params{{Key: "id", Value: "656f000000000000000000aa"}}
	c.Set(middleware.ContextUserKey, &models.TokenClaims{Email: "a@x.com"})

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "656f000000000000000000aa", mock.deleteID)
	assert.Equal(t, "a@x.com", mock.ownerEmail)

	var result dto.DeleteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(1), result.DeletedCount)
}
