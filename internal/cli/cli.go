// Package cli holds the opserr subcommands and their shared helpers.
package cli

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/opserr/internal/app"
	"github.com/thenoetrevino/opserr/internal/config"
	"github.com/thenoetrevino/opserr/internal/tui"
)

// addConfigFlag registers the --config flag shared by every command that
// reads the configuration
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Config file (default $XDG_CONFIG_HOME/opserr/config.yaml)")
}

// configPath returns the --config flag, or the default location when unset
func configPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return path, nil
	}
	return config.Path()
}

// loadConfig loads the config named by --config, or the default one
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// formatter builds an output formatter writing to the command's streams
func formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return &OutputFormatter{
		JSON: jsonOutput,
		Out:  cmd.OutOrStdout(),
		Err:  cmd.ErrOrStderr(),
	}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, app.ErrUnknownBackend), errors.Is(err, tui.ErrUnknownMode):
		return ExitUsage
	case errors.As(err, &validationErrs):
		return ExitValidation
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitError
	}
}
