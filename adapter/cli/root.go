// Package cli implements the schedsync command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/moimlab/schedsync/pkg/observability"
)

var (
	verbose bool
	logger  *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "schedsync",
	Short: "Schedsync - CQRS schedule client",
	Long: `Schedsync is a client for a CQRS-split schedule backend.

Writes go to the command service and reads to the query service; the two
are deployed independently and the read model may briefly lag behind a
write. Set SCHEDSYNC_USE_MOCK=false to talk to the real services instead
of the built-in in-memory substitute.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		// One correlation ID per invocation, carried on every request the
		// command makes to either service.
		ctx := observability.NewRequestContext(cmd.Context(), "")
		cmd.SetContext(observability.WithOperation(ctx, cmd.CommandPath()))
		logger.Debug("command start", "command", cmd.CommandPath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Debug("command end", "command", cmd.CommandPath())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// Verbose reports whether --verbose was passed.
func Verbose() bool {
	return verbose
}
