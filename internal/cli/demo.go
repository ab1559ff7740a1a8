package cli

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/opserr/internal/app"
	"github.com/thenoetrevino/opserr/internal/tui"
	"github.com/thenoetrevino/opserr/internal/tui/theme"
)

// DemoCmd returns the interactive demo command
func DemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Fail simulated operations and watch their errors come and go",
		Long: `Start an interactive session that stores operation errors in a state
store and shows them until they are cleared.

In component mode the error is shown in the middle of the screen and deleted
after the configured display duration. In displayable mode every error
becomes a toast and is deleted from the store as soon as it is shown.

Examples:
  # Dispatch store, error component
  opserr demo

  # Reactive store, toast notifications
  opserr demo --backend=reactive --mode=displayable

  # Keep errors on screen for five seconds
  OPSERR_DISPLAY_DURATION_MS=5000 opserr demo
`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}

	cmd.Flags().String("backend", string(app.BackendDispatch), "State store backend (dispatch or reactive)")
	cmd.Flags().String("mode", string(tui.ModeComponent), "How errors are shown (component or displayable)")
	addConfigFlag(cmd)

	return cmd
}

type demoOptions struct {
	backend app.Backend
	mode    tui.Mode
}

func parseDemoOptions(cmd *cobra.Command) (demoOptions, error) {
	backendName, _ := cmd.Flags().GetString("backend")
	modeName, _ := cmd.Flags().GetString("mode")

	backend, err := app.ParseBackend(backendName)
	if err != nil {
		return demoOptions{}, err
	}
	mode, err := tui.ParseMode(modeName)
	if err != nil {
		return demoOptions{}, err
	}
	return demoOptions{backend: backend, mode: mode}, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	opts, err := parseDemoOptions(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	theme.Init(cfg.ColorScheme)

	application, err := app.New(cfg.ErrorDisplay, app.WithBackend(opts.backend))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			slog.Error("failed to close application", "error", closeErr)
		}
	}()

	model := tui.New(application, cfg, opts.mode)
	defer model.Close()

	slog.Info("starting demo", "backend", opts.backend, "mode", opts.mode)
	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}
	return nil
}
