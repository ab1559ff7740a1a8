package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/opserr/internal/config"
)

// ErrConfigExists is returned by config init when the file is already there
var ErrConfigExists = errors.New("config file already exists")

// ConfigCmd returns the config command and its subcommands
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the opserr configuration",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configPathCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after defaults and environment overrides
have been applied.

Examples:
  opserr config show
  opserr config show --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return formatter(cmd).Success(cfg)
		},
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	addConfigFlag(cmd)

	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				out := formatter(cmd)
				if fmtErr := out.ErrorWithSuggestion("CONFIG_EXISTS",
					fmt.Sprintf("%s already exists", path),
					"Pass --force to overwrite it"); fmtErr != nil {
					return fmtErr
				}
				return fmt.Errorf("%w: %s", ErrConfigExists, path)
			}

			if err := config.Default().SaveFile(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			return formatter(cmd).Message("wrote %s", path)
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	addConfigFlag(cmd)

	return cmd
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the configuration is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
