package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/pulse/internal/config"
	"github.com/faizmokh/pulse/internal/files"
	"github.com/faizmokh/pulse/internal/portal"
	"github.com/faizmokh/pulse/internal/telemetry"
	"github.com/faizmokh/pulse/internal/ui"
)

const serviceName = "pulse"

// Deps carries what the commands need to reach the portal and local state.
type Deps struct {
	Config  config.Config
	Files   *files.Manager
	Fetcher portal.Fetcher
	Now     func() time.Time
}

type app struct {
	Deps
	token string
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, deps Deps) *cobra.Command {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	a := &app{Deps: deps}

	var monthFlag string
	cmd := &cobra.Command{
		Use:   "pulse",
		Short: "Review your burnout level and mood diary from the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := resolveMonth(monthFlag, a.Now())
			if err != nil {
				return err
			}
			session, err := a.session()
			if err != nil {
				return err
			}

			closeLog, err := setupTUILogging(a.Config.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			m := ui.NewModel(ctx, a.Fetcher, session, month)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&monthFlag, "month", "", "Month to open (YYYY-MM), defaults to the current month")
	cmd.PersistentFlags().StringVar(&a.token, "token", "", "Session token, overrides PULSE_TOKEN and the saved login")

	cmd.AddCommand(
		newDashboardCommand(ctx, a),
		newCalendarCommand(ctx, a),
		newPrevCommand(ctx, a),
		newNextCommand(ctx, a),
		newLevelCommand(),
		newLoginCommand(a),
		newLogoutCommand(a),
		newServeCommand(ctx, a),
		newVersionCommand(),
	)

	return cmd
}

// setupTUILogging keeps log output off the terminal while the TUI owns it.
func setupTUILogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := tea.LogToFile(path, serviceName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// ExecuteCommand loads configuration, wires the portal client and executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry, serviceName)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	manager, err := files.NewManager("")
	if err != nil {
		return err
	}
	client, err := portal.NewClient(cfg.APIURL, portal.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return err
	}

	cmd := NewRootCommand(ctx, Deps{
		Config:  cfg,
		Files:   manager,
		Fetcher: client,
	})
	return cmd.Execute()
}

// Main is a helper used by cmd/pulse/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

