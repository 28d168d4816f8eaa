// Package application orchestrates the command and query ports for a UI
// session and owns the client-side consequences of the CQRS split: loading
// and error state, validation before transport, and the deferred refresh
// that papers over read-after-write lag.
package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moimlab/schedsync/internal/schedule/domain"
	"github.com/moimlab/schedsync/pkg/observability"
)

// DefaultRefreshDelay is how long a post-mutation refresh waits for the read
// model to catch up. A bounded guess, not a guarantee; see ScheduleRefresh.
const DefaultRefreshDelay = time.Second

// SyncService is the view-model behind the schedule screens. One instance
// per session; all operations are scoped to the owner it was built with.
//
// Operations never propagate errors to the caller. Queries return nil and
// mutations return false on failure, with the cause available from Err()
// until the next operation starts.
type SyncService struct {
	commands     domain.CommandPort
	queries      domain.QueryPort
	ownerID      uuid.UUID
	refreshDelay time.Duration
	logger       *slog.Logger
	metrics      observability.Metrics

	mu       sync.Mutex
	inflight int
	lastErr  error

	timerMu      sync.Mutex
	refreshTimer *time.Timer
	closed       bool
}

// NewSyncService creates a view-model bound to the given ports and owner.
func NewSyncService(commands domain.CommandPort, queries domain.QueryPort, ownerID uuid.UUID, refreshDelay time.Duration, logger *slog.Logger) *SyncService {
	if refreshDelay <= 0 {
		refreshDelay = DefaultRefreshDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncService{
		commands:     commands,
		queries:      queries,
		ownerID:      ownerID,
		refreshDelay: refreshDelay,
		logger:       logger,
		metrics:      observability.NoopMetrics{},
	}
}

// WithMetrics replaces the metrics collector. Call before first use.
func (s *SyncService) WithMetrics(m observability.Metrics) *SyncService {
	if m != nil {
		s.metrics = m
	}
	return s
}

// Loading reports whether any operation is in flight.
func (s *SyncService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err returns the failure of the most recent operation, or nil. It is
// cleared when a new operation starts.
func (s *SyncService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// OwnerID returns the owner this session is scoped to.
func (s *SyncService) OwnerID() uuid.UUID {
	return s.ownerID
}

func (s *SyncService) begin() time.Time {
	s.mu.Lock()
	s.lastErr = nil
	s.inflight++
	s.mu.Unlock()
	return time.Now()
}

func (s *SyncService) finish(op string, start time.Time, err error) {
	s.mu.Lock()
	if err != nil {
		s.lastErr = err
	}
	s.inflight--
	s.mu.Unlock()

	tag := observability.T(observability.OperationKey, op)
	s.metrics.Counter(observability.MetricOperationTotal, 1, tag)
	s.metrics.Timing(observability.MetricOperationDuration, time.Since(start), tag)
	if err != nil {
		s.metrics.Counter(observability.MetricOperationErrors, 1, tag)
		s.logger.Warn("schedule operation failed", "operation", op, "error", err)
	}
}

// FetchSchedule loads a single schedule. Returns nil on failure.
func (s *SyncService) FetchSchedule(ctx context.Context, scheduleID uuid.UUID) *domain.Schedule {
	start := s.begin()
	schedule, err := s.queries.GetByID(ctx, s.ownerID, scheduleID)
	s.finish("fetch_schedule", start, err)
	s.metrics.Counter(observability.MetricQueriesTotal, 1)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.Counter(observability.MetricQueriesMissed, 1)
		}
		return nil
	}
	return schedule
}

// FetchByDay loads the owner's schedules for one calendar day. Returns nil on
// failure; previously returned pages stay valid with the caller.
func (s *SyncService) FetchByDay(ctx context.Context, day time.Time, q domain.ListQuery) *domain.Page {
	start := s.begin()
	page, err := s.queries.GetByDay(ctx, s.ownerID, day, q)
	s.finish("fetch_by_day", start, err)
	s.metrics.Counter(observability.MetricQueriesTotal, 1)
	if err != nil {
		return nil
	}
	return page
}

// FetchAll loads every schedule of the owner. Returns nil on failure.
func (s *SyncService) FetchAll(ctx context.Context, q domain.ListQuery) *domain.Page {
	start := s.begin()
	page, err := s.queries.GetAll(ctx, s.ownerID, q)
	s.finish("fetch_all", start, err)
	s.metrics.Counter(observability.MetricQueriesTotal, 1)
	if err != nil {
		return nil
	}
	return page
}

// FetchByMonth loads the owner's schedules for one calendar month. Returns
// nil on failure.
func (s *SyncService) FetchByMonth(ctx context.Context, year int, month time.Month, q domain.ListQuery) *domain.Page {
	start := s.begin()
	page, err := s.queries.GetByMonth(ctx, s.ownerID, year, month, q)
	s.finish("fetch_by_month", start, err)
	s.metrics.Counter(observability.MetricQueriesTotal, 1)
	if err != nil {
		return nil
	}
	return page
}

// Create submits a new custom schedule. Validation failures are recorded
// without touching the transport.
func (s *SyncService) Create(ctx context.Context, req domain.CreateScheduleRequest) bool {
	start := s.begin()
	err := req.Validate()
	if err == nil {
		err = s.commands.Create(ctx, s.ownerID, req)
	}
	s.finish("create", start, err)
	if err == nil {
		s.metrics.Counter(observability.MetricSchedulesCreated, 1)
	}
	return err == nil
}

// Update submits a full replacement of an existing custom schedule.
func (s *SyncService) Update(ctx context.Context, req domain.UpdateScheduleRequest) bool {
	start := s.begin()
	err := req.Validate()
	if err == nil {
		err = s.commands.Update(ctx, s.ownerID, req)
	}
	s.finish("update", start, err)
	if err == nil {
		s.metrics.Counter(observability.MetricSchedulesUpdated, 1)
	}
	return err == nil
}

// Delete removes an existing custom schedule.
func (s *SyncService) Delete(ctx context.Context, req domain.DeleteScheduleRequest) bool {
	start := s.begin()
	err := req.Validate()
	if err == nil {
		err = s.commands.Delete(ctx, s.ownerID, req)
	}
	s.finish("delete", start, err)
	if err == nil {
		s.metrics.Counter(observability.MetricSchedulesDeleted, 1)
	}
	return err == nil
}

// ScheduleRefresh arms fn to run once after the configured delay. The read
// model lags the command side, so a fetch fired immediately after a
// successful mutation may miss it; waiting a fixed interval before
// refreshing is an accepted mitigation, not a consistency guarantee.
//
// Re-arming replaces a pending refresh. After Close, arming is a no-op.
func (s *SyncService) ScheduleRefresh(fn func()) {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.closed {
		return
	}
	if s.refreshTimer != nil && s.refreshTimer.Stop() {
		s.metrics.Counter(observability.MetricRefreshCancelled, 1)
	}
	s.refreshTimer = time.AfterFunc(s.refreshDelay, fn)
	s.metrics.Counter(observability.MetricRefreshScheduled, 1)
}

// Close cancels any pending refresh so a dismounted view is never called
// back, and prevents further arming.
func (s *SyncService) Close() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	s.closed = true
	if s.refreshTimer != nil {
		if s.refreshTimer.Stop() {
			s.metrics.Counter(observability.MetricRefreshCancelled, 1)
		}
		s.refreshTimer = nil
	}
}
