package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/models"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
	"github.com/studyhive/studyhive-api/pkg/response"
)

type assignmentService interface {
	List(ctx context.Context, filter models.AssignmentFilter) (*dto.ListAssignmentsResponse, error)
	Get(ctx context.Context, idHex string) (*models.Assignment, error)
	Create(ctx context.Context, req dto.CreateAssignmentRequest, creatorEmail string) (*dto.InsertResult, error)
	ListMine(ctx context.Context, tokenEmail, queryEmail string) ([]models.Assignment, error)
	ListFeatured(ctx context.Context) ([]models.Assignment, error)
	Update(ctx context.Context, idHex string, req dto.UpdateAssignmentRequest, tokenEmail, queryEmail, recordOwnerEmail string) (*dto.UpdateResult, error)
	UpdateOpen(ctx context.Context, idHex string, req dto.UpdateAssignmentRequest) (*dto.UpdateResult, error)
	Delete(ctx context.Context, idHex, tokenEmail, queryEmail, ownerEmail string) (*dto.DeleteResult, error)
}

// AssignmentHandler handles the assignment endpoints.
type AssignmentHandler struct {
	service assignmentService
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(svc assignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// List godoc
// @Summary Browse assignments
// @Description Paginated assignment listing with an optional level filter
// @Tags Assignments
// @Produce json
// @Param level query string false "Level tag"
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Success 200 {object} dto.ListAssignmentsResponse
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	filter := models.AssignmentFilter{Level: c.Query("level")}

	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.Query("size")); err == nil {
		filter.Size = size
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, result)
}

// Get godoc
// @Summary Get assignment
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} models.Assignment
// @Router /assignment/{id} [get]
func (h *AssignmentHandler) Get(c *gin.Context) {
	assignment, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, assignment)
}

// Create godoc
// @Summary Create assignment
// @Description Inserts an assignment, resolving the user reference from the email query parameter
// @Tags Assignments
// @Accept json
// @Produce json
// @Param email query string false "Creator email"
// @Param payload body dto.CreateAssignmentRequest true "Assignment payload"
// @Success 200 {object} dto.InsertResult
// @Router /create-assignment [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}

	result, err := h.service.Create(c.Request.Context(), req, c.Query("email"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, result)
}

// ListMine godoc
// @Summary List own assignments
// @Tags Assignments
// @Produce json
// @Param email query string true "Owner email, must match the token email"
// @Success 200 {array} models.Assignment
// @Failure 401 {object} response.FailureEnvelope
// @Router /my-assignment [get]
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Fail(c, appErrors.ErrUnauthorized)
		return
	}

	assignments, err := h.service.ListMine(c.Request.Context(), claims.Email, c.Query("email"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, assignments)
}

// ListFeatured godoc
// @Summary List featured assignments
// @Tags Assignments
// @Produce json
// @Success 200 {array} models.Assignment
// @Router /features-assignment [get]
func (h *AssignmentHandler) ListFeatured(c *gin.Context) {
	assignments, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, assignments)
}

// Update godoc
// @Summary Update own assignment
// @Description Partial update; the email and productEmail parameters must both match the token email
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param email query string true "Owner email"
// @Param productEmail query string true "Record owner email"
// @Param payload body dto.UpdateAssignmentRequest true "Partial assignment"
// @Success 200 {object} dto.UpdateResult
// @Failure 403 {object} response.FailureEnvelope
// @Router /update-assignment/{id} [patch]
func (h *AssignmentHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Fail(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), req, claims.Email, c.Query("email"), c.Query("productEmail"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateOpen godoc
// @Summary Open assignment update
// @Description Unauthenticated partial update variant
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID"
// @Param payload body dto.UpdateAssignmentRequest true "Partial assignment"
// @Success 200 {object} dto.UpdateResult
// @Router /update-students/{id} [patch]
func (h *AssignmentHandler) UpdateOpen(c *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}

	result, err := h.service.UpdateOpen(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, result)
}

// Delete godoc
// @Summary Delete own assignment
// @Description The email parameter must match the token email and assemail must match email
// @Tags Assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Param email query string true "Owner email"
// @Param assemail query string true "Assignment owner email"
// @Success 200 {object} dto.DeleteResult
// @Failure 401 {object} response.FailureEnvelope
// @Router /delete-my-assign/{id} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Fail(c, appErrors.ErrUnauthorized)
		return
	}

	result, err := h.service.Delete(c.Request.Context(), c.Param("id"), claims.Email, c.Query("email"), c.Query("assemail"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, result)
}
