package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhive/studyhive-api/internal/dto"
	"github.com/studyhive/studyhive-api/internal/models"
	"github.com/studyhive/studyhive-api/internal/service"
	"github.com/studyhive/studyhive-api/pkg/config"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
	"github.com/studyhive/studyhive-api/pkg/response"
)

// AuthHandler owns the session cookie: it issues the identity token into the
// cookie jar and clears it on logout.
type AuthHandler struct {
	auth       *service.AuthService
	cookieName string
	maxAge     int
	production bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		cookieName: cfg.JWT.CookieName,
		maxAge:     int(cfg.JWT.Expiration.Seconds()),
		production: cfg.Env == config.EnvProduction,
	}
}

// IssueToken godoc
// @Summary Issue identity token
// @Description Signs the posted identity claims and sets the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.TokenRequest true "Identity claims"
// @Success 200 {object} response.StatusEnvelope
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}

	token, err := h.auth.IssueToken(models.TokenClaims{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}

	h.setSessionCookie(c, token, h.maxAge)
	response.Status(c, "Token create successfull")
}

// Logout godoc
// @Summary Logout
// @Description Clears the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.StatusEnvelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Status(c, "Logout successfull")
}

// setSessionCookie writes the token cookie. Cross-site frontends need
// SameSite=None plus Secure in production; development keeps Lax over HTTP.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.production, true)
}
