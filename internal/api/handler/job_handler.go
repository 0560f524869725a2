package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ljchuang/sweepbook/internal/api/dto"
	"github.com/ljchuang/sweepbook/internal/api/service"
)

// CreateJob handles POST /api/jobs
// Books a new cleaning job and returns it with the assigned id and
// derived total.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	job, err := h.service.Create(c.Request.Context(), service.CreateInput{
		Date:       req.Date,
		ClientName: req.ClientName,
		Hours:      req.Hours,
		HourlyRate: req.HourlyRate,
		TimeSlot:   req.TimeSlot,
		Address:    req.Address,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs handles GET /api/jobs?month=YYYY-MM
// Returns the jobs of one month window.
func (h *JobHandler) ListJobs(c *gin.Context) {
	month := c.Query("month")

	jobs, err := h.service.ListByMonth(c.Request.Context(), month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// UpdateJob handles PUT /api/jobs/:id
// Merges any subset of mutable fields onto the job; a bare date change
// is the reschedule path the calendar drag uses.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body",
			slog.String("job_id", id),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body",
		})
		return
	}

	job, err := h.service.UpdateFields(c.Request.Context(), id, req.Patch())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob handles DELETE /api/jobs/:id
// Removes the job row; the table compacts behind it.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
