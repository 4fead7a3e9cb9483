// Package store is the HTTP+JSON client for the remote fleet store. The
// boundary is a plain REST contract: one request per call, no retries, no
// backoff; a failed fetch is reported and the caller keeps its last-known
// good data.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexusops/tempo/internal/domain/model"
	"github.com/nexusops/tempo/pkg/metrics"
)

// Defaults for the remote store boundary.
const (
	defaultBaseURL = "http://127.0.0.1:8000"
	defaultTimeout = 5 * time.Second

	// maxErrorBodyBytes bounds how much of an error response is carried
	// into the returned error string.
	maxErrorBodyBytes = 4 << 10
)

// Client talks to the remote fleet store.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client with the default base URL and timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Ack is the store's reply to a write: a success status and an optional
// human-readable message.
type Ack struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Assets fetches the asset fleet.
func (c *Client) Assets(ctx context.Context) ([]model.Asset, error) {
	var out []model.Asset
	if err := c.getJSON(ctx, "/assets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Engineers fetches the engineer roster.
func (c *Client) Engineers(ctx context.Context) ([]model.Engineer, error) {
	var out []model.Engineer
	if err := c.getJSON(ctx, "/engineers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Alerts fetches active alerts.
func (c *Client) Alerts(ctx context.Context) ([]model.Alert, error) {
	var out []model.Alert
	if err := c.getJSON(ctx, "/alerts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Readiness fetches the remote readiness analysis.
func (c *Client) Readiness(ctx context.Context) ([]model.ReadinessMetric, error) {
	var out []model.ReadinessMetric
	if err := c.getJSON(ctx, "/analysis/readiness", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Assignments fetches raw, un-normalized work orders.
func (c *Client) Assignments(ctx context.Context) ([]model.RawAssignment, error) {
	var out []model.RawAssignment
	if err := c.getJSON(ctx, "/assignments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AuditLog fetches the append-only audit ledger.
func (c *Client) AuditLog(ctx context.Context) ([]model.AuditEntry, error) {
	var out []model.AuditEntry
	if err := c.getJSON(ctx, "/audit", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunScheduler triggers an external scheduler run.
func (c *Client) RunScheduler(ctx context.Context) (Ack, error) {
	return c.writeJSON(ctx, http.MethodPost, "/schedule", nil)
}

// CompleteAssignment marks a work order complete by id.
func (c *Client) CompleteAssignment(ctx context.Context, id string) (Ack, error) {
	return c.writeJSON(ctx, http.MethodPut, "/assignments/"+id+"/complete", nil)
}

// AddAsset registers a new asset with the store.
func (c *Client) AddAsset(ctx context.Context, payload any) (Ack, error) {
	return c.writeJSON(ctx, http.MethodPost, "/assets/add", payload)
}

// DeleteAsset removes an asset by id.
func (c *Client) DeleteAsset(ctx context.Context, id string) (Ack, error) {
	return c.writeJSON(ctx, http.MethodDelete, "/assets/"+id, nil)
}

// AddEngineer registers a new engineer with the store.
func (c *Client) AddEngineer(ctx context.Context, payload any) (Ack, error) {
	return c.writeJSON(ctx, http.MethodPost, "/engineers", payload)
}

// DeleteEngineer removes an engineer by id.
func (c *Client) DeleteEngineer(ctx context.Context, id string) (Ack, error) {
	return c.writeJSON(ctx, http.MethodDelete, "/engineers/"+id, nil)
}

// TriggerChaos asks the store to run its chaos simulation.
func (c *Client) TriggerChaos(ctx context.Context) (Ack, error) {
	return c.writeJSON(ctx, http.MethodPost, "/assets/chaos", nil)
}

// ResetHealth asks the store to restore full fleet health.
func (c *Client) ResetHealth(ctx context.Context) (Ack, error) {
	return c.writeJSON(ctx, http.MethodPost, "/assets/reset-health", nil)
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrDecodeResponse, path, err)
	}
	return nil
}

// writeJSON performs a mutating request and decodes the ack, tolerating an
// empty body.
func (c *Client) writeJSON(ctx context.Context, method, path string, payload any) (Ack, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return Ack{}, fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	body, err := c.do(ctx, method, path, reqBody)
	if err != nil {
		return Ack{}, err
	}

	var ack Ack
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &ack); err != nil {
			return Ack{}, fmt.Errorf("%w: %s %s: %w", ErrDecodeResponse, method, path, err)
		}
	}
	return ack, nil
}

// do runs one request. Non-2xx statuses surface the response body text as
// the error; there is deliberately no retry path here.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordStoreRequest(path, "transport_error")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.RecordStoreRequestLatency(float64(time.Since(start).Milliseconds()))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		metrics.RecordStoreRequest(path, "status_error")
		return nil, fmt.Errorf("%w: %s %s returned %d: %s",
			ErrUnexpectedStatus, method, path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordStoreRequest(path, "read_error")
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	metrics.RecordStoreRequest(path, "ok")
	return payload, nil
}
