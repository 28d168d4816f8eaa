// Package schedule implements the schedule command group.
package schedule

import (
	"github.com/spf13/cobra"
)

// Cmd is the schedule command group
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage your schedules",
	Long:  `Create, change, and view schedules on the CQRS schedule backend.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(dayCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(monthCmd)
}
