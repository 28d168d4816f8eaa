package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/moimlab/schedsync/internal/schedule/domain"
)

// DefaultOwnerID is the owner the fixture set belongs to. It matches the
// development account the mobile build signs in with.
var DefaultOwnerID = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

func at(day time.Time, hour, minute int) domain.LocalDateTime {
	return domain.NewLocalDateTime(time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local))
}

// Fixtures returns the initial mock data set for the given owner. Dates are
// relative to today so the day and month views always have something to show.
func Fixtures(ownerID uuid.UUID) []domain.Schedule {
	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)
	dayAfter := today.AddDate(0, 0, 2)
	nextWeek := today.AddDate(0, 0, 7)

	return []domain.Schedule{
		{
			ID:           uuid.MustParse("8f8e5d5e-63d7-4a4e-9d2f-1b93b9a1e0c7"),
			OwnerID:      ownerID,
			Title:        "Team meeting",
			Description:  "Weekly sprint review and status updates",
			StartAt:      at(today, 10, 0),
			EndAt:        at(today, 11, 30),
			Source:       domain.SourceCustom,
			EventVersion: 1,
			OccurredAt:   at(today, 9, 0),
			UpdatedAt:    at(today, 9, 0),
		},
		{
			ID:           uuid.MustParse("7a1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d"),
			OwnerID:      ownerID,
			Title:        "Algorithm study group",
			Description:  "Problem walkthroughs and code review",
			StartAt:      at(today, 14, 0),
			EndAt:        at(today, 16, 0),
			Source:       domain.SourceStudy,
			EventVersion: 1,
			OccurredAt:   at(today, 8, 0),
			UpdatedAt:    at(today, 8, 0),
		},
		{
			ID:           uuid.MustParse("9b8c7d6e-5f4e-3d2c-1b0a-9f8e7d6c5b4a"),
			OwnerID:      ownerID,
			Title:        "Dinner reservation",
			StartAt:      at(today, 19, 0),
			EndAt:        at(today, 21, 0),
			Source:       domain.SourceDating,
			EventVersion: 1,
			OccurredAt:   at(today, 7, 30),
			UpdatedAt:    at(today, 7, 30),
		},
		{
			ID:           uuid.MustParse("1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d"),
			OwnerID:      ownerID,
			Title:        "Workout",
			Description:  "Gym session, upper body",
			StartAt:      at(tomorrow, 7, 0),
			EndAt:        at(tomorrow, 8, 30),
			Source:       domain.SourceCustom,
			EventVersion: 1,
			OccurredAt:   at(today, 20, 0),
			UpdatedAt:    at(today, 20, 0),
		},
		{
			ID:           uuid.MustParse("2b3c4d5e-6f7a-8b9c-0d1e-2f3a4b5c6d7e"),
			OwnerID:      ownerID,
			Title:        "Lunch meeting",
			Description:  "Project collaboration discussion",
			StartAt:      at(tomorrow, 12, 0),
			EndAt:        at(tomorrow, 13, 0),
			Source:       domain.SourceCustom,
			EventVersion: 1,
			OccurredAt:   at(today, 18, 0),
			UpdatedAt:    at(today, 18, 0),
		},
		{
			ID:           uuid.MustParse("3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f"),
			OwnerID:      ownerID,
			Title:        "English study group",
			Description:  "Conversation practice",
			StartAt:      at(dayAfter, 18, 0),
			EndAt:        at(dayAfter, 20, 0),
			Source:       domain.SourceStudy,
			EventVersion: 1,
			OccurredAt:   at(today, 15, 0),
			UpdatedAt:    at(today, 15, 0),
		},
		{
			ID:           uuid.MustParse("4d5e6f7a-8b9c-0d1e-2f3a-4b5c6d7e8f9a"),
			OwnerID:      ownerID,
			Title:        "Movie night",
			StartAt:      at(nextWeek, 19, 30),
			EndAt:        at(nextWeek, 22, 0),
			Source:       domain.SourceDating,
			EventVersion: 1,
			OccurredAt:   at(today, 13, 0),
			UpdatedAt:    at(today, 13, 0),
		},
	}
}
