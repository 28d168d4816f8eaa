package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/pkg/observability"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check reachability of the command and query services",
	Long: `Probe both schedule services and report their status.

The services fail independently: the query side can keep serving reads
while the command side is down, and vice versa.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}

		health := app.Health.GetOverallHealth(cmd.Context())

		names := make([]string, 0, len(health.Checks))
		for name := range health.Checks {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			check := health.Checks[name]
			marker := "ok"
			if check.Status != observability.HealthStatusHealthy {
				marker = "FAIL"
			}
			fmt.Printf("%-10s %-5s %s\n", name, marker, check.Message)
		}
		fmt.Printf("overall: %s\n", health.Status)

		if health.Status != observability.HealthStatusHealthy {
			return fmt.Errorf("one or more services unreachable")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
