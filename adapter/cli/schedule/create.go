package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/adapter/cli"
	"github.com/moimlab/schedsync/internal/schedule/domain"
)

var (
	createTitle       string
	createDescription string
	createDate        string
	createStart       string
	createEnd         string
	createNoRefresh   bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new custom schedule",
	Long: `Create a new custom schedule on the command service.

The write is acknowledged without a payload; because the query side is a
separate projection, the new schedule may not be readable immediately. A
refresh of the day's schedules runs after a short delay to pick it up.

Examples:
  schedsync schedule create --title "Team meeting" --start 09:00 --end 10:00
  schedsync schedule create --title "Dentist" --date 2025-10-01 --start 14:00 --end 14:30`,
	Aliases: []string{"add", "new"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		day, err := parseDay(createDate)
		if err != nil {
			return err
		}
		startAt, err := parseTimeOn(day, createStart)
		if err != nil {
			return err
		}
		endAt, err := parseTimeOn(day, createEnd)
		if err != nil {
			return err
		}

		ok := app.Sync.Create(cmd.Context(), domain.CreateScheduleRequest{
			Title:       createTitle,
			Description: createDescription,
			StartAt:     startAt,
			EndAt:       endAt,
		})
		if !ok {
			return fmt.Errorf("failed to create schedule: %w", app.Sync.Err())
		}

		fmt.Printf("Created %q on %s\n", createTitle, day.Format(domain.DayLayout))
		if !createNoRefresh {
			refreshDay(cmd, app, day)
		}
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "schedule title (required)")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "optional description")
	createCmd.Flags().StringVar(&createDate, "date", "", "day of the schedule (YYYY-MM-DD, default today)")
	createCmd.Flags().StringVar(&createStart, "start", "", "start time (HH:MM, required)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "end time (HH:MM, required)")
	createCmd.Flags().BoolVar(&createNoRefresh, "no-refresh", false, "skip the deferred refresh")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("start")
	_ = createCmd.MarkFlagRequired("end")
}
