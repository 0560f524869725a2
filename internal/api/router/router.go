package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ljchuang/sweepbook/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes.
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "sweepbook-api",
		})
	})

	jobHandler := handler.NewJobHandler(deps)

	api := r.Group("/api")
	{
		jobs := api.Group("/jobs")
		{
			// POST /api/jobs - Book a new job
			jobs.POST("", jobHandler.CreateJob)

			// GET /api/jobs?month=YYYY-MM - Month window
			jobs.GET("", jobHandler.ListJobs)

			// PUT /api/jobs/:id - Patch fields / reschedule
			jobs.PUT("/:id", jobHandler.UpdateJob)

			// DELETE /api/jobs/:id - Remove a job
			jobs.DELETE("/:id", jobHandler.DeleteJob)
		}
	}

	return r
}
