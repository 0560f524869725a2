package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ljchuang/sweepbook/internal/api/domain"
	"github.com/ljchuang/sweepbook/internal/api/dto"
)

// API is the booking service as seen from the client side. The mirror
// cache talks only through this; tests substitute a fake.
type API interface {
	Create(ctx context.Context, req dto.CreateJobRequest) (domain.Job, error)
	ListByMonth(ctx context.Context, monthKey string) ([]domain.Job, error)
	Move(ctx context.Context, id, newDate string) (domain.Job, error)
	Delete(ctx context.Context, id string) error
}

// HTTPClient implements API over the JSON endpoints.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a client for the API at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Error    string   `json:"error"`
	Required []string `json:"required"`
}

// do sends one JSON request and decodes the response into out when the
// call succeeds. API failures come back as the same error taxonomy the
// server uses, so callers handle one set of types.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorBody
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		switch resp.StatusCode {
		case http.StatusNotFound:
			return domain.ErrJobNotFound
		case http.StatusBadRequest:
			msg := apiErr.Error
			if msg == "" {
				msg = "invalid request"
			}
			return &domain.ValidationError{Message: msg, Missing: apiErr.Required}
		default:
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Create(ctx context.Context, req dto.CreateJobRequest) (domain.Job, error) {
	var job domain.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", req, &job); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}

func (c *HTTPClient) ListByMonth(ctx context.Context, monthKey string) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs?month="+monthKey, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *HTTPClient) Move(ctx context.Context, id, newDate string) (domain.Job, error) {
	var job domain.Job
	req := dto.UpdateJobRequest{Date: &newDate}
	if err := c.do(ctx, http.MethodPut, "/api/jobs/"+id, req, &job); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/jobs/"+id, nil, nil)
}
