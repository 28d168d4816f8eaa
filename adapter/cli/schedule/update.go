package schedule

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/adapter/cli"
	"github.com/moimlab/schedsync/internal/schedule/domain"
)

var (
	updateID          string
	updateTitle       string
	updateDescription string
	updateDate        string
	updateStart       string
	updateEnd         string
	updateNoRefresh   bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace an existing custom schedule",
	Long: `Replace the title, description, and times of a custom schedule.

All fields are sent as a full replacement; omitting --description clears
it. Only schedules with source CUSTOM can be changed.

Examples:
  schedsync schedule update --id <schedule-id> --title "Team meeting (moved)" --start 10:00 --end 11:00`,
	Aliases: []string{"edit"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		scheduleID, err := uuid.Parse(updateID)
		if err != nil {
			return fmt.Errorf("invalid schedule id: %w", err)
		}
		day, err := parseDay(updateDate)
		if err != nil {
			return err
		}
		startAt, err := parseTimeOn(day, updateStart)
		if err != nil {
			return err
		}
		endAt, err := parseTimeOn(day, updateEnd)
		if err != nil {
			return err
		}

		ok := app.Sync.Update(cmd.Context(), domain.UpdateScheduleRequest{
			ScheduleID:  scheduleID,
			Title:       updateTitle,
			Description: updateDescription,
			StartAt:     startAt,
			EndAt:       endAt,
		})
		if !ok {
			return fmt.Errorf("failed to update schedule: %w", app.Sync.Err())
		}

		fmt.Printf("Updated %s\n", scheduleID)
		if !updateNoRefresh {
			refreshDay(cmd, app, day)
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateID, "id", "", "schedule id (required)")
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title (required)")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new description")
	updateCmd.Flags().StringVar(&updateDate, "date", "", "day of the schedule (YYYY-MM-DD, default today)")
	updateCmd.Flags().StringVar(&updateStart, "start", "", "new start time (HH:MM, required)")
	updateCmd.Flags().StringVar(&updateEnd, "end", "", "new end time (HH:MM, required)")
	updateCmd.Flags().BoolVar(&updateNoRefresh, "no-refresh", false, "skip the deferred refresh")
	_ = updateCmd.MarkFlagRequired("id")
	_ = updateCmd.MarkFlagRequired("title")
	_ = updateCmd.MarkFlagRequired("start")
	_ = updateCmd.MarkFlagRequired("end")
}
