package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"github.com/moimlab/schedsync/internal/schedule/domain"
)

var _ domain.CommandPort = (*CommandClient)(nil)

// CommandClient talks to the write-optimized schedule service. Mutations
// return no payload on success; a subsequent read against the query service
// is not guaranteed to reflect them immediately.
type CommandClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[any]
	logger  *slog.Logger
}

// NewCommandClient creates a client for the command service at baseURL
// (scheme, host, and command port).
func NewCommandClient(baseURL string, timeout time.Duration, logger *slog.Logger) *CommandClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		breaker: newBreaker("schedule-command"),
		logger:  logger,
	}
}

// Create submits a new custom schedule.
// POST /schedules/custom
func (c *CommandClient) Create(ctx context.Context, ownerID uuid.UUID, req domain.CreateScheduleRequest) error {
	return c.send(ctx, http.MethodPost, ownerID, req)
}

// Update replaces the mutable fields of an existing custom schedule.
// PATCH /schedules/custom
func (c *CommandClient) Update(ctx context.Context, ownerID uuid.UUID, req domain.UpdateScheduleRequest) error {
	return c.send(ctx, http.MethodPatch, ownerID, req)
}

// Delete removes an existing custom schedule.
// DELETE /schedules/custom
func (c *CommandClient) Delete(ctx context.Context, ownerID uuid.UUID, req domain.DeleteScheduleRequest) error {
	return c.send(ctx, http.MethodDelete, ownerID, req)
}

// Ping reports whether the command service is reachable. Any HTTP response
// counts as reachable; only transport failures are errors.
func (c *CommandClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedules/custom", nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (c *CommandClient) send(ctx context.Context, method string, ownerID uuid.UUID, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode command: %w", err)
	}

	_, err = c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/schedules/custom", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		setCommonHeaders(req, ownerID.String())

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, responseError(domain.ServiceCommand, resp)
		}
		// Success carries no payload (typically 204); drain so the
		// connection can be reused, never decode.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	})
	if err != nil {
		c.logger.Warn("schedule command failed", "method", method, "error", err)
		return err
	}

	c.logger.Debug("schedule command accepted", "method", method)
	return nil
}
