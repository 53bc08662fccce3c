package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/studyhive/studyhive-api/pkg/errors"
)

// FailureEnvelope is the in-band error contract legacy clients parse.
type FailureEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// StatusEnvelope is returned by the token issue/logout endpoints.
type StatusEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// OK sends the payload as-is with HTTP 200. The legacy contract serializes
// raw documents and driver results, not a wrapped envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Text sends a plain text body with HTTP 200.
func Text(c *gin.Context, body string) {
	c.String(http.StatusOK, body)
}

// Status sends the {"status":true} envelope used by the session endpoints.
func Status(c *gin.Context, message string) {
	c.JSON(http.StatusOK, StatusEnvelope{Status: true, Message: message})
}

// Fail reports a failure. Only authentication and ownership denials keep
// their transport status; every other failure is reported in-band with 200
// to stay compatible with existing clients.
func Fail(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	status := http.StatusOK
	if appErr.Status == http.StatusUnauthorized || appErr.Status == http.StatusForbidden {
		status = appErr.Status
	}

	c.JSON(status, FailureEnvelope{Success: false, Error: appErr.Message})
}
