package rest

import (
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

var _ domain.QueryPort = (*QueryClient)(nil)

// monthFetchSize is the page size used when collecting the full schedule set
// for client-side month filtering.
const monthFetchSize = 100

// QueryClient talks to the read-optimized schedule service. The read model
// is an asynchronous projection and may lag behind the command side.
type QueryClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[any]
	logger  *slog.Logger
}

// NewQueryClient creates a client for the query service at baseURL (scheme,
// host, and query port).
func NewQueryClient(baseURL string, timeout time.Duration, logger *slog.Logger) *QueryClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		breaker: newBreaker("schedule-query"),
		logger:  logger,
	}
}

// Ping reports whether the query service is reachable. Any HTTP response
// counts as reachable; only transport failures are errors.
func (c *QueryClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedules/all?page=0&size=1", nil)
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

// GetByID fetches a single schedule.
// GET /schedules/{scheduleId}; 404 maps to domain.ErrNotFound.
func (c *QueryClient) GetByID(ctx context.Context, ownerID, scheduleID uuid.UUID) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := c.getJSON(ctx, ownerID, "/schedules/"+scheduleID.String(), true, &schedule)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetByDay fetches the owner's schedules starting on the given calendar day.
// GET /schedules?day=YYYY-MM-DD&page=&size=&sort=
func (c *QueryClient) GetByDay(ctx context.Context, ownerID uuid.UUID, day time.Time, q domain.ListQuery) (*domain.Page, error) {
	params := listParams(q)
	params.Set("day", day.Format(domain.DayLayout))

	var page domain.Page
	if err := c.getJSON(ctx, ownerID, pathWithParams("/schedules", params), false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAll fetches every schedule of the owner.
// GET /schedules/all?page=&size=&sort=
func (c *QueryClient) GetAll(ctx context.Context, ownerID uuid.UUID, q domain.ListQuery) (*domain.Page, error) {
	var page domain.Page
	if err := c.getJSON(ctx, ownerID, pathWithParams("/schedules/all", listParams(q)), false, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByMonth fetches the owner's schedules starting within the given calendar
// month. The query service has no range endpoint, so the full set is
// collected page by page and filtered here, then re-paginated to the
// requested page and size.
func (c *QueryClient) GetByMonth(ctx context.Context, ownerID uuid.UUID, year int, month time.Month, q domain.ListQuery) (*domain.Page, error) {
	matched := make([]domain.Schedule, 0)
	for page := 0; ; page++ {
		chunk, err := c.GetAll(ctx, ownerID, domain.ListQuery{Sort: q.Sort}.WithPage(page).WithSize(monthFetchSize))
		if err != nil {
			return nil, err
		}
		for _, s := range chunk.Content {
			if s.InMonth(year, month) {
				matched = append(matched, s)
			}
		}
		if chunk.Last || chunk.Empty {
			break
		}
	}
	return domain.NewPage(matched, q.PageOrDefault(), q.SizeOrDefault()), nil
}

func (c *QueryClient) getJSON(ctx context.Context, ownerID uuid.UUID, path string, mapNotFound bool, out any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		setCommonHeaders(req, ownerID.String())

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if mapNotFound && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", strings.TrimPrefix(path, "/schedules/"), domain.ErrNotFound)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, responseError(domain.ServiceQuery, resp)
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode query response: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		c.logger.Warn("schedule query failed", "path", path, "error", err)
	}
	return err
}
