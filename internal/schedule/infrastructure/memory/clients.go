package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moimlab/schedsync/internal/schedule/domain"
)

// DefaultLatency approximates a round trip on a local network, so loading
// indicators behave the same against the mock as against the real services.
const DefaultLatency = 500 * time.Millisecond

// wait blocks for the artificial latency, giving up early when the context is
// cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var (
	_ domain.CommandPort = (*CommandClient)(nil)
	_ domain.QueryPort   = (*QueryClient)(nil)
)

// CommandClient implements domain.CommandPort against a Store.
type CommandClient struct {
	store   *Store
	latency time.Duration
}

// NewCommandClient creates a mock command client. A latency of 0 resolves
// immediately; tests use that.
func NewCommandClient(store *Store, latency time.Duration) *CommandClient {
	return &CommandClient{store: store, latency: latency}
}

// Create inserts a fresh CUSTOM schedule for the owner.
func (c *CommandClient) Create(ctx context.Context, ownerID uuid.UUID, req domain.CreateScheduleRequest) error {
	if err := wait(ctx, c.latency); err != nil {
		return err
	}
	c.store.Create(ownerID, req)
	return nil
}

// Update mutates an existing CUSTOM schedule in place.
func (c *CommandClient) Update(ctx context.Context, ownerID uuid.UUID, req domain.UpdateScheduleRequest) error {
	if err := wait(ctx, c.latency); err != nil {
		return err
	}
	_, err := c.store.Update(ownerID, req)
	return err
}

// Delete removes an existing CUSTOM schedule.
func (c *CommandClient) Delete(ctx context.Context, ownerID uuid.UUID, req domain.DeleteScheduleRequest) error {
	if err := wait(ctx, c.latency); err != nil {
		return err
	}
	return c.store.Delete(ownerID, req)
}

// QueryClient implements domain.QueryPort against the same Store.
type QueryClient struct {
	store   *Store
	latency time.Duration
}

// NewQueryClient creates a mock query client.
func NewQueryClient(store *Store, latency time.Duration) *QueryClient {
	return &QueryClient{store: store, latency: latency}
}

// GetByID returns a single schedule scoped to the owner.
func (c *QueryClient) GetByID(ctx context.Context, ownerID, scheduleID uuid.UUID) (*domain.Schedule, error) {
	if err := wait(ctx, c.latency); err != nil {
		return nil, err
	}
	found, err := c.store.FindByID(ownerID, scheduleID)
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// GetByDay returns the owner's schedules starting on the given calendar day,
// ordered by StartAt.
func (c *QueryClient) GetByDay(ctx context.Context, ownerID uuid.UUID, day time.Time, q domain.ListQuery) (*domain.Page, error) {
	if err := wait(ctx, c.latency); err != nil {
		return nil, err
	}
	all := c.store.ListByOwner(ownerID)
	filtered := all[:0:0]
	for _, s := range all {
		if s.OnDay(day) {
			filtered = append(filtered, s)
		}
	}
	return domain.NewPage(filtered, q.PageOrDefault(), q.SizeOrDefault()), nil
}

// GetAll returns every schedule of the owner, ordered by StartAt.
func (c *QueryClient) GetAll(ctx context.Context, ownerID uuid.UUID, q domain.ListQuery) (*domain.Page, error) {
	if err := wait(ctx, c.latency); err != nil {
		return nil, err
	}
	return domain.NewPage(c.store.ListByOwner(ownerID), q.PageOrDefault(), q.SizeOrDefault()), nil
}

// GetByMonth returns the owner's schedules starting within the given calendar
// month.
func (c *QueryClient) GetByMonth(ctx context.Context, ownerID uuid.UUID, year int, month time.Month, q domain.ListQuery) (*domain.Page, error) {
	if err := wait(ctx, c.latency); err != nil {
		return nil, err
	}
	all := c.store.ListByOwner(ownerID)
	filtered := all[:0:0]
	for _, s := range all {
		if s.InMonth(year, month) {
			filtered = append(filtered, s)
		}
	}
	return domain.NewPage(filtered, q.PageOrDefault(), q.SizeOrDefault()), nil
}
