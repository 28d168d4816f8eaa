// Package memory is the in-process substitute for the remote command and
// query services. It reproduces their pagination, filtering, and latency
// behavior so callers cannot tell the two apart.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moimlab/schedsync/internal/schedule/domain"
)

// Store is an owned, mutex-guarded collection of schedules. It backs the mock
// command and query clients; the mutex makes the find-then-mutate sequences
// atomic for multi-goroutine callers.
type Store struct {
	mu        sync.Mutex
	schedules []domain.Schedule
	seed      []domain.Schedule
	now       func() time.Time
}

// NewStore creates a store seeded with the given fixture set. Reset restores
// exactly this set.
func NewStore(seed []domain.Schedule) *Store {
	s := &Store{
		seed: append([]domain.Schedule(nil), seed...),
		now:  time.Now,
	}
	s.schedules = append([]domain.Schedule(nil), seed...)
	return s
}

// WithClock overrides the store's clock. Used by tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Create inserts a new CUSTOM schedule for the owner and returns it. The id
// is freshly generated and the version starts at 1.
func (s *Store) Create(ownerID uuid.UUID, req domain.CreateScheduleRequest) domain.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := domain.NewLocalDateTime(s.now())
	created := domain.Schedule{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		Source:       domain.SourceCustom,
		EventVersion: 1,
		OccurredAt:   now,
		UpdatedAt:    now,
	}
	s.schedules = append(s.schedules, created)
	return created
}

// Update replaces the mutable fields of an existing CUSTOM schedule. The
// version is bumped by exactly 1 and UpdatedAt is rewritten; OccurredAt is
// preserved from creation.
func (s *Store) Update(ownerID uuid.UUID, req domain.UpdateScheduleRequest) (domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(ownerID, req.ScheduleID)
	if idx < 0 {
		return domain.Schedule{}, fmt.Errorf("schedule %s: %w", req.ScheduleID, domain.ErrNotFound)
	}
	if !s.schedules[idx].Source.IsMutable() {
		return domain.Schedule{}, fmt.Errorf("schedule %s: %w", req.ScheduleID, domain.ErrReadOnlySource)
	}

	updated := s.schedules[idx]
	updated.Title = req.Title
	updated.Description = req.Description
	updated.StartAt = req.StartAt
	updated.EndAt = req.EndAt
	updated.EventVersion++
	updated.UpdatedAt = domain.NewLocalDateTime(s.now())
	s.schedules[idx] = updated
	return updated, nil
}

// Delete removes an existing CUSTOM schedule. Deleting a missing or already
// deleted id fails with ErrNotFound rather than silently succeeding.
func (s *Store) Delete(ownerID uuid.UUID, req domain.DeleteScheduleRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(ownerID, req.ScheduleID)
	if idx < 0 {
		return fmt.Errorf("schedule %s: %w", req.ScheduleID, domain.ErrNotFound)
	}
	if !s.schedules[idx].Source.IsMutable() {
		return fmt.Errorf("schedule %s: %w", req.ScheduleID, domain.ErrReadOnlySource)
	}

	s.schedules = append(s.schedules[:idx], s.schedules[idx+1:]...)
	return nil
}

// FindByID returns the schedule with the given (id, owner) pair.
func (s *Store) FindByID(ownerID, scheduleID uuid.UUID) (domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(ownerID, scheduleID)
	if idx < 0 {
		return domain.Schedule{}, fmt.Errorf("schedule %s: %w", scheduleID, domain.ErrNotFound)
	}
	return s.schedules[idx], nil
}

// ListByOwner returns a copy of the owner's schedules ordered by StartAt
// ascending.
func (s *Store) ListByOwner(ownerID uuid.UUID) []domain.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Schedule, 0)
	for _, sched := range s.schedules {
		if sched.OwnerID == ownerID {
			out = append(out, sched)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartAt.Before(out[j].StartAt)
	})
	return out
}

// Reset restores the store to its initial fixture set, discarding all
// mutations.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = append([]domain.Schedule(nil), s.seed...)
}

// Snapshot returns a copy of the current contents in insertion order without
// mutating the store. Dev and test harness use only.
func (s *Store) Snapshot() []domain.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Schedule(nil), s.schedules...)
}

// Len returns the number of stored schedules across all owners.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.schedules)
}

func (s *Store) indexOf(ownerID, scheduleID uuid.UUID) int {
	for i, sched := range s.schedules {
		if sched.ID == scheduleID && sched.OwnerID == ownerID {
			return i
		}
	}
	return -1
}
