package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListQuery carries optional pagination parameters. Nil fields are omitted
// from the transport call entirely rather than sent as empty values.
type ListQuery struct {
	Page *int
	Size *int
	Sort string
}

// WithPage returns a copy of q with the page number set.
func (q ListQuery) WithPage(page int) ListQuery {
	q.Page = &page
	return q
}

// WithSize returns a copy of q with the page size set.
func (q ListQuery) WithSize(size int) ListQuery {
	q.Size = &size
	return q
}

// PageOrDefault returns the requested page number, defaulting to 0.
func (q ListQuery) PageOrDefault() int {
	if q.Page == nil {
		return 0
	}
	return *q.Page
}

// SizeOrDefault returns the requested page size, defaulting to
// DefaultPageSize.
func (q ListQuery) SizeOrDefault() int {
	if q.Size == nil {
		return DefaultPageSize
	}
	return *q.Size
}

// CommandPort is the write side of the schedule service. Mutations are
// fire-and-forget: success carries no payload, and a subsequent read is not
// guaranteed to reflect the change until the read model catches up.
type CommandPort interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateScheduleRequest) error
	Update(ctx context.Context, ownerID uuid.UUID, req UpdateScheduleRequest) error
	Delete(ctx context.Context, ownerID uuid.UUID, req DeleteScheduleRequest) error
}

// QueryPort is the read side of the schedule service. All results are scoped
// to the requesting owner and ordered by StartAt ascending.
type QueryPort interface {
	GetByID(ctx context.Context, ownerID, scheduleID uuid.UUID) (*Schedule, error)
	GetByDay(ctx context.Context, ownerID uuid.UUID, day time.Time, q ListQuery) (*Page, error)
	GetAll(ctx context.Context, ownerID uuid.UUID, q ListQuery) (*Page, error)
	GetByMonth(ctx context.Context, ownerID uuid.UUID, year int, month time.Month, q ListQuery) (*Page, error)
}
