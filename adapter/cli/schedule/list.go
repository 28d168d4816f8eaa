package schedule

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/adapter/cli"
)

var (
	listPage int
	listSize int
	listSort string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all schedules",
	Long: `List every schedule of the owner, newest page first if the
server sorts that way.

Examples:
  schedsync schedule list
  schedsync schedule list --page 1 --size 10`,
	Aliases: []string{"all", "ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		page := app.Sync.FetchAll(cmd.Context(), listQueryFromFlags(cmd, listPage, listSize, listSort))
		if page == nil {
			return fmt.Errorf("failed to list schedules: %w", app.Sync.Err())
		}

		printPage(page)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 0, "zero-based page number")
	listCmd.Flags().IntVar(&listSize, "size", 0, "page size")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort expression, e.g. startAt,asc")
}
