package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/models"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
	"github.com/studyhive/studyhive-api/pkg/response"
)

type userService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.InsertResult, error)
	Get(ctx context.Context, idHex string) (*models.User, error)
	Update(ctx context.Context, idHex string, req dto.UpdateUserRequest, tokenEmail, queryEmail string) (*dto.UpdateResult, error)
}

// UserHandler handles the user profile endpoints.
type UserHandler struct {
	service userService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// Create godoc
// @Summary Create user
// @Description Records a user at first sign-in
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.CreateUserRequest true "User payload"
// @Success 200 {object} dto.InsertResult
// @Router /user [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
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

// Get godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Router /user/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, user)
}

// Update godoc
// @Summary Update own profile
// @Description Partial update; the email parameter must match the token email
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param email query string true "Profile owner email"
// @Param payload body dto.UpdateUserRequest true "Partial user"
// @Success 200 {object} dto.UpdateResult
// @Failure 403 {object} response.FailureEnvelope
// @Router /user/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Fail(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}

	result, err := h.service.Update(c.Request.Context(), c.Param("id"), req, claims.Email, c.Query("email"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, result)
}
