package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/adapter/cli"
	"github.com/moimlab/schedsync/internal/schedule/domain"
)

var removeNoRefresh bool

var removeCmd = &cobra.Command{
	Use:   "remove <schedule-id>",
	Short: "Delete a custom schedule",
	Long: `Delete a custom schedule from the command service.

Examples:
  schedsync schedule remove 3e0f6f7a-7f5b-4f3e-9b0a-2f3a4b5c6d7e`,
	Aliases: []string{"delete", "rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		scheduleID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid schedule id: %w", err)
		}

		ok := app.Sync.Delete(cmd.Context(), domain.DeleteScheduleRequest{ScheduleID: scheduleID})
		if !ok {
			return fmt.Errorf("failed to delete schedule: %w", app.Sync.Err())
		}

		fmt.Printf("Deleted %s\n", scheduleID)
		if !removeNoRefresh {
			refreshDay(cmd, app, time.Now())
		}
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeNoRefresh, "no-refresh", false, "skip the deferred refresh")
}
