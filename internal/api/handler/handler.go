package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ljchuang/sweepbook/internal/api/domain"
	"github.com/ljchuang/sweepbook/internal/api/service"
)

// Dependencies holds everything the handlers need.
type Dependencies struct {
	Logger  *slog.Logger
	Service *service.Service
}

// JobHandler handles booking HTTP requests.
type JobHandler struct {
	logger  *slog.Logger
	service *service.Service
}

// NewJobHandler creates a new JobHandler instance.
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger:  deps.Logger,
		service: deps.Service,
	}
}

// respondError maps the error taxonomy onto status codes: validation
// errors are 400 with the missing-field list, unknown ids are 404 and
// everything else is a 500 store failure.
func (h *JobHandler) respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		body := gin.H{"error": vErr.Message}
		if len(vErr.Missing) > 0 {
			body["required"] = vErr.Missing
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
	default:
		h.logger.Error("Request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage operation failed"})
	}
}
