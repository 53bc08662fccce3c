package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/models"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
	"github.com/studyhive/studyhive-api/pkg/response"
)

type submissionService interface {
	ListPending(ctx context.Context) ([]models.Submission, error)
	Create(ctx context.Context, req dto.CreateSubmissionRequest) (*dto.InsertResult, error)
	Grade(ctx context.Context, idHex string, req dto.GradeSubmissionRequest) (*dto.UpdateResult, error)
	ListMine(ctx context.Context, tokenEmail, queryEmail string) ([]models.Submission, error)
}

// SubmissionHandler handles the submission and grading endpoints.
type SubmissionHandler struct {
	service submissionService
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(svc submissionService) *SubmissionHandler {
	return &SubmissionHandler{service: svc}
}

// ListPending godoc
// @Summary List pending submissions
// @Description The examiner work queue; no authentication required
// @Tags Submissions
// @Produce json
// @Success 200 {array} models.Submission
// @Router /pending-submitions [get]
func (h *SubmissionHandler) ListPending(c *gin.Context) {
	submissions, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, submissions)
}

// Create godoc
// @Summary Create submission
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body dto.CreateSubmissionRequest true "Submission payload"
// @Success 200 {object} dto.InsertResult
// @Router /create-submition [post]
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, result)
}

// Grade godoc
// @Summary Grade submission
// @Description Writes marks and feedback and flips status to graded
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param payload body dto.GradeSubmissionRequest true "Grading payload"
// @Success 200 {object} dto.UpdateResult
// @Router /update-submite/{id} [patch]
func (h *SubmissionHandler) Grade(c *gin.Context) {
	var req dto.GradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}

	result, err := h.service.Grade(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, result)
}

// ListMine godoc
// @Summary List own submissions
// @Tags Submissions
// @Produce json
// @Param email query string true "Submitter email, must match the token email"
// @Success 200 {array} models.Submission
// @Failure 403 {object} response.FailureEnvelope
// @Router /my-submition [get]
func (h *SubmissionHandler) ListMine(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Fail(c, appErrors.ErrUnauthorized)
		return
	}

	submissions, err := h.service.ListMine(c.Request.Context(), claims.Email, c.Query("email"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, submissions)
}
