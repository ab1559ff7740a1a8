package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/opserr/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "opserr",
	Short: "opserr - surface, display and clear operation errors",
	Long: `opserr keeps the last operation error in a state store, shows it and
clears it again so it is never displayed twice.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cli.DemoCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
}

// ExecuteContext runs the root command with ctx as every command's context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
