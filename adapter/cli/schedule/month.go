package schedule

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/adapter/cli"
)

var (
	monthValue string
	monthPage  int
	monthSize  int
	monthSort  string
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "List schedules for one month",
	Long: `List the owner's schedules whose start falls in a calendar month.

The backend has no month endpoint, so against the real services this
collects all schedules and filters locally before paginating.

Examples:
  schedsync schedule month
  schedsync schedule month --month 2025-10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		now := time.Now()
		year, month := now.Year(), now.Month()
		if monthValue != "" {
			parsed, err := time.ParseInLocation("2006-01", monthValue, time.Local)
			if err != nil {
				return fmt.Errorf("invalid month format, use YYYY-MM: %w", err)
			}
			year, month = parsed.Year(), parsed.Month()
		}

		page := app.Sync.FetchByMonth(cmd.Context(), year, month, listQueryFromFlags(cmd, monthPage, monthSize, monthSort))
		if page == nil {
			return fmt.Errorf("failed to list schedules: %w", app.Sync.Err())
		}

		fmt.Printf("Schedules for %04d-%02d\n", year, month)
		printPage(page)
		return nil
	},
}

func init() {
	monthCmd.Flags().StringVar(&monthValue, "month", "", "month to list (YYYY-MM, default current)")
	monthCmd.Flags().IntVar(&monthPage, "page", 0, "zero-based page number")
	monthCmd.Flags().IntVar(&monthSize, "size", 0, "page size")
	monthCmd.Flags().StringVar(&monthSort, "sort", "", "sort expression, e.g. startAt,asc")
}
