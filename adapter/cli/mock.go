package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Inspect and reset the in-memory substitute",
	Long: `Work with the in-memory store that substitutes both services when
SCHEDSYNC_USE_MOCK is enabled. These commands fail in real mode.`,
}

var mockResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the mock store to its seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		if app.MockStore == nil {
			return fmt.Errorf("mock commands require SCHEDSYNC_USE_MOCK=true")
		}

		app.MockStore.Reset()
		fmt.Printf("Mock store reset to %d seed schedules\n", app.MockStore.Len())
		return nil
	},
}

var mockDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the current mock store contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		if app.MockStore == nil {
			return fmt.Errorf("mock commands require SCHEDSYNC_USE_MOCK=true")
		}

		schedules := app.MockStore.Snapshot()
		fmt.Printf("%d schedules\n", len(schedules))
		fmt.Println(strings.Repeat("-", 60))
		for _, s := range schedules {
			fmt.Printf("[%s] %s - %s  %s (owner %s, v%d)\n",
				s.Source,
				s.StartAt.Time().Format("2006-01-02 15:04"),
				s.EndAt.Time().Format("15:04"),
				s.Title,
				s.OwnerID,
				s.EventVersion,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mockCmd)
	mockCmd.AddCommand(mockResetCmd)
	mockCmd.AddCommand(mockDumpCmd)
}
