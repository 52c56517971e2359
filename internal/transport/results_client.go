// Package transport holds the client for the upstream results-ingestion
// API: a single POST of the finished submission record.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"assessment-service/internal/models"
)

// DefaultTimeout bounds how long a submission may stay pending. After it
// the attempt resolves to an error; there is no retry.
const DefaultTimeout = 10 * time.Second

type ResultsClient struct {
	baseURL string
	http    *http.Client
}

func NewResultsClient(baseURL string) *ResultsClient {
	return &ResultsClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// Submit posts the record and returns the assessment ID the upstream
// assigned. Network failure, timeout or a non-2xx status all come back as a
// descriptive error.
func (c *ResultsClient) Submit(ctx context.Context, record *models.SubmissionRecord) (int64, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/results", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("submit results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr struct {
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&serverErr) == nil && serverErr.Message != "" {
			return 0, fmt.Errorf("server error: %s", serverErr.Message)
		}
		return 0, fmt.Errorf("server error: %s", resp.Status)
	}

	var payload struct {
		AssessmentID int64 `json:"assessmentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode submission response: %w", err)
	}
	return payload.AssessmentID, nil
}
