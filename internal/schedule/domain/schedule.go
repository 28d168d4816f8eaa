package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which subsystem produced a schedule.
type Source string

const (
	// SourceCustom marks schedules entered by the owner.
	SourceCustom Source = "CUSTOM"
	// SourceDating marks schedules projected from the dating subsystem.
	SourceDating Source = "DATING"
	// SourceStudy marks schedules projected from the study subsystem.
	SourceStudy Source = "STUDY"
)

// IsValid reports whether s is one of the known sources.
func (s Source) IsValid() bool {
	switch s {
	case SourceCustom, SourceDating, SourceStudy:
		return true
	}
	return false
}

// IsMutable reports whether schedules with this source may be updated or
// deleted through the custom-schedule command endpoint. DATING and STUDY
// records are read-only projections owned by other subsystems.
func (s Source) IsMutable() bool {
	return s == SourceCustom
}

// Schedule is the canonical schedule record shared by the command and query
// sides. The query side is an eventually consistent read model, so a Schedule
// read immediately after a mutation may be stale.
type Schedule struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"ownerId"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	StartAt      LocalDateTime `json:"startAt"`
	EndAt        LocalDateTime `json:"endAt"`
	Source       Source        `json:"source"`
	EventVersion int           `json:"eventVersion"`
	OccurredAt   LocalDateTime `json:"occurredAt"`
	UpdatedAt    LocalDateTime `json:"updatedAt"`
}

// CreateScheduleRequest carries the fields the write side needs to create a
// custom schedule. The server assigns id, version, and event timestamps.
type CreateScheduleRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	StartAt     LocalDateTime `json:"startAt"`
	EndAt       LocalDateTime `json:"endAt"`
}

// Validate checks caller-side preconditions before any transport call.
func (r CreateScheduleRequest) Validate() error {
	if r.Title == "" {
		return &ValidationError{Field: "title", Message: "title must not be empty"}
	}
	if !r.StartAt.Before(r.EndAt) {
		return &ValidationError{Field: "endAt", Message: "endAt must be after startAt"}
	}
	return nil
}

// UpdateScheduleRequest carries a full replacement of the mutable fields of an
// existing custom schedule.
type UpdateScheduleRequest struct {
	ScheduleID  uuid.UUID     `json:"scheduleId"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	StartAt     LocalDateTime `json:"startAt"`
	EndAt       LocalDateTime `json:"endAt"`
}

// Validate checks caller-side preconditions before any transport call.
func (r UpdateScheduleRequest) Validate() error {
	if r.ScheduleID == uuid.Nil {
		return &ValidationError{Field: "scheduleId", Message: "scheduleId is required"}
	}
	if r.Title == "" {
		return &ValidationError{Field: "title", Message: "title must not be empty"}
	}
	if !r.StartAt.Before(r.EndAt) {
		return &ValidationError{Field: "endAt", Message: "endAt must be after startAt"}
	}
	return nil
}

// DeleteScheduleRequest identifies the custom schedule to remove.
type DeleteScheduleRequest struct {
	ScheduleID uuid.UUID `json:"scheduleId"`
}

// Validate checks caller-side preconditions before any transport call.
func (r DeleteScheduleRequest) Validate() error {
	if r.ScheduleID == uuid.Nil {
		return &ValidationError{Field: "scheduleId", Message: "scheduleId is required"}
	}
	return nil
}

// OnDay reports whether the schedule starts on the given calendar day,
// ignoring time of day.
func (s Schedule) OnDay(day time.Time) bool {
	y1, m1, d1 := s.StartAt.Time().Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// InMonth reports whether the schedule starts within the given calendar month.
func (s Schedule) InMonth(year int, month time.Month) bool {
	y, m, _ := s.StartAt.Time().Date()
	return y == year && m == month
}
