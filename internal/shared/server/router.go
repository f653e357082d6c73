package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profile-forge-backend/internal/services/health"
	"profile-forge-backend/internal/shared/config"
	"profile-forge-backend/internal/shared/metrics"
	"profile-forge-backend/internal/shared/server/middleware"
	"profile-forge-backend/internal/shared/server/respond"
	"profile-forge-backend/internal/submissions"
)

const welcomeMessage = "Welcome to the Profile Forge Backend API"

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config      config.Config
	Health      *health.Service
	Submissions *submissions.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{"message": welcomeMessage})
	})
	r.GET("/healthz", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		respond.OK(c, deps.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.Submissions != nil {
		deps.Submissions.RegisterRoutes(r)
	}

	return r
}
