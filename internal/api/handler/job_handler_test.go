package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljchuang/sweepbook/internal/api/domain"
	"github.com/ljchuang/sweepbook/internal/api/handler"
	"github.com/ljchuang/sweepbook/internal/api/router"
	"github.com/ljchuang/sweepbook/internal/api/service"
	"github.com/ljchuang/sweepbook/internal/api/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(storage.NewMemory(), nil, logger)
	return router.SetupRouter(&handler.Dependencies{
		Logger:  logger,
		Service: svc,
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateJob(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/jobs", gin.H{
		"date":        "2025-06-10",
		"client_name": "A",
		"hours":       3,
		"hourly_rate": 200,
		"time_slot":   "09:00-11:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var job domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, 600.0, job.Total)
	assert.Equal(t, "09:00-11:00", job.TimeSlot)
}

func TestCreateJob_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/jobs", gin.H{
		"date":  "2025-06-10",
		"hours": 3,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error    string   `json:"error"`
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.ElementsMatch(t, []string{"client_name", "hourly_rate"}, body.Required)
}

func TestListJobs_MissingMonth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/jobs", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateJob_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/jobs/123", gin.H{"date": "2025-06-12"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteJob_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/jobs/123", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingFlow(t *testing.T) {
	r := newTestRouter(t)

	// Book.
	w := doJSON(t, r, http.MethodPost, "/api/jobs", gin.H{
		"date":        "2025-06-10",
		"client_name": "A",
		"hours":       3,
		"hourly_rate": 200,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, 600.0, created.Total)

	// Month window includes it.
	w = doJSON(t, r, http.MethodGet, "/api/jobs?month=2025-06", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var jobs []domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)

	// Reschedule: only the date changes.
	w = doJSON(t, r, http.MethodPut, "/api/jobs/"+created.ID, gin.H{"date": "2025-06-12"})
	require.Equal(t, http.StatusOK, w.Code)
	var moved domain.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moved))
	assert.Equal(t, created.ID, moved.ID)
	assert.Equal(t, "2025-06-12", moved.Date)
	assert.Equal(t, 600.0, moved.Total)

	w = doJSON(t, r, http.MethodGet, "/api/jobs?month=2025-06", nil)
	require.Equal(t, http.StatusOK, w.Code)
	jobs = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, "2025-06-12", jobs[0].Date)

	// Remove.
	w = doJSON(t, r, http.MethodDelete, "/api/jobs/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var deleted map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.True(t, deleted["success"])

	w = doJSON(t, r, http.MethodGet, "/api/jobs?month=2025-06", nil)
	require.Equal(t, http.StatusOK, w.Code)
	jobs = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	assert.Empty(t, jobs)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
