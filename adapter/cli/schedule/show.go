package schedule

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/adapter/cli"
)

var showCmd = &cobra.Command{
	Use:   "show <schedule-id>",
	Short: "Show a single schedule",
	Long: `Fetch one schedule from the query service by its id.

Examples:
  schedsync schedule show 3e0f6f7a-7f5b-4f3e-9b0a-2f3a4b5c6d7e`,
	Aliases: []string{"get", "view"},
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

		schedule := app.Sync.FetchSchedule(cmd.Context(), scheduleID)
		if schedule == nil {
			return fmt.Errorf("failed to fetch schedule: %w", app.Sync.Err())
		}

		printSchedule(*schedule)
		return nil
	},
}
