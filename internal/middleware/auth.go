package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/studyhive/studyhive-api/internal/service"
	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
	"github.com/studyhive/studyhive-api/pkg/response"
)

// ContextUserKey is the gin context key storing the decoded token claims.
const ContextUserKey = "currentUser"

// Auth protects routes by requiring a valid identity token in the session
// cookie. Routes registered without it treat the request as anonymous.
func Auth(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Fail(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			response.Fail(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}
