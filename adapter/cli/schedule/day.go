package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/adapter/cli"
	"github.com/moimlab/schedsync/internal/schedule/domain"
)

var (
	dayDate string
	dayPage int
	daySize int
	daySort string
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "List schedules for one day",
	Long: `List the owner's schedules for a single calendar day.

Only the calendar date is matched; times of day are ignored.

Examples:
  schedsync schedule day
  schedsync schedule day --date 2025-10-01 --size 5`,
	Aliases: []string{"today"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		day, err := parseDay(dayDate)
		if err != nil {
			return err
		}

		page := app.Sync.FetchByDay(cmd.Context(), day, listQueryFromFlags(cmd, dayPage, daySize, daySort))
		if page == nil {
			return fmt.Errorf("failed to list schedules: %w", app.Sync.Err())
		}

		fmt.Printf("Schedules for %s\n", day.Format(domain.DayLayout))
		printPage(page)
		return nil
	},
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", "", "day to list (YYYY-MM-DD, default today)")
	dayCmd.Flags().IntVar(&dayPage, "page", 0, "zero-based page number")
	dayCmd.Flags().IntVar(&daySize, "size", 0, "page size")
	dayCmd.Flags().StringVar(&daySort, "sort", "", "sort expression, e.g. startAt,asc")
}
