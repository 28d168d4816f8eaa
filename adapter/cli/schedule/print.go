package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/adapter/cli"
	"github.com/moimlab/schedsync/internal/schedule/domain"
)

// refreshWaitMargin is added to the configured refresh delay when a command
// blocks waiting for the post-mutation refresh to finish.
const refreshWaitMargin = 20 * time.Second

func printSchedule(s domain.Schedule) {
	fmt.Printf("[%s] %s - %s  %s\n",
		s.Source,
		s.StartAt.Time().Format("2006-01-02 15:04"),
		s.EndAt.Time().Format("15:04"),
		s.Title,
	)
	if s.Description != "" {
		fmt.Printf("       %s\n", s.Description)
	}
	fmt.Printf("       id: %s  version: %d\n", s.ID, s.EventVersion)
}

func printPage(page *domain.Page) {
	if page.Empty {
		fmt.Println("No schedules found.")
		return
	}
	fmt.Printf("Page %d of %d (%d total)\n", page.PageNumber+1, page.TotalPages, page.TotalElements)
	fmt.Println(strings.Repeat("-", 60))
	for _, s := range page.Content {
		printSchedule(s)
	}
}

// parseDay parses a YYYY-MM-DD flag value, defaulting to today.
func parseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation(domain.DayLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	return day, nil
}

// parseTimeOn combines a day with an HH:MM clock value.
func parseTimeOn(day time.Time, value string) (domain.LocalDateTime, error) {
	clock, err := time.Parse("15:04", value)
	if err != nil {
		return domain.LocalDateTime{}, fmt.Errorf("invalid time format, use HH:MM: %w", err)
	}
	return domain.NewLocalDateTime(time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local)), nil
}

// listQueryFromFlags builds a ListQuery from the shared pagination flags,
// leaving unchanged flags unset so the server applies its own defaults.
func listQueryFromFlags(cmd *cobra.Command, page, size int, sort string) domain.ListQuery {
	q := domain.ListQuery{Sort: sort}
	if cmd.Flags().Changed("page") {
		q = q.WithPage(page)
	}
	if cmd.Flags().Changed("size") {
		q = q.WithSize(size)
	}
	return q
}

// refreshDay arms the deferred post-mutation refresh and blocks until it has
// printed the day's schedules. The wait exists only because a CLI process
// exits; a long-lived UI would let the timer fire on its own.
func refreshDay(cmd *cobra.Command, app *cli.App, day time.Time) {
	done := make(chan struct{})
	app.Sync.ScheduleRefresh(func() {
		defer close(done)
		page := app.Sync.FetchByDay(cmd.Context(), day, domain.ListQuery{})
		if page == nil {
			fmt.Printf("refresh failed: %v\n", app.Sync.Err())
			return
		}
		fmt.Printf("\nSchedules for %s\n", day.Format(domain.DayLayout))
		printPage(page)
	})

	select {
	case <-done:
	case <-time.After(app.Config.RefreshDelay + refreshWaitMargin):
		fmt.Println("refresh timed out")
	}
}
