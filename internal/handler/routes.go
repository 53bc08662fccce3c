package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhive/studyhive-api/pkg/response"
)

// Handlers bundles everything route registration needs.
type Handlers struct {
	Auth        *AuthHandler
	Assignments *AssignmentHandler
	Submissions *SubmissionHandler
	Users       *UserHandler
	Metrics     *MetricsHandler
}

// RegisterRoutes mounts the full API surface. Routes registered without the
// auth guard are intentionally anonymous.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, authGuard gin.HandlerFunc) {
	r.GET("/", func(c *gin.Context) {
		response.Text(c, "Home route is working")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if h.Metrics != nil {
		r.GET("/metrics", h.Metrics.Prometheus)
	}

	api := r.Group(prefix)

	api.GET("/assignments", h.Assignments.List)
	api.GET("/assignment/:id", h.Assignments.Get)
	api.POST("/create-assignment", h.Assignments.Create)
	api.PATCH("/update-assignment/:id", authGuard, h.Assignments.Update)
	api.PATCH("/update-students/:id", h.Assignments.UpdateOpen)
	api.GET("/my-assignment", authGuard, h.Assignments.ListMine)
	api.GET("/features-assignment", h.Assignments.ListFeatured)
	api.DELETE("/delete-my-assign/:id", authGuard, h.Assignments.Delete)

	api.GET("/pending-submitions", h.Submissions.ListPending)
	api.POST("/create-submition", h.Submissions.Create)
	api.PATCH("/update-submite/:id", h.Submissions.Grade)
	api.GET("/my-submition", authGuard, h.Submissions.ListMine)

	api.POST("/jwt", h.Auth.IssueToken)
	api.POST("/logout", h.Auth.Logout)

	api.POST("/user", h.Users.Create)
	api.GET("/user/:id", h.Users.Get)
	api.PATCH("/user/:id", authGuard, h.Users.Update)
}
