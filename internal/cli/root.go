package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"taskdo/internal/api"
	"taskdo/internal/config"
	"taskdo/internal/format"
	"taskdo/internal/tui"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X taskdo/internal/cli.Version=...".
var Version = "dev"

type App struct {
	APIURL     string
	PrettyJSON bool
	Format     string

	log     *slog.Logger
	logFile io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdo",
		Short:        "Task manager TUI + CLI for the TaskFlow API",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskdo

  # Run the task API locally
  taskdo serve --addr :8000 --db tasks.db

  # Scriptable commands
  taskdo tasks list --format table
  taskdo tasks add --title "Write report" --due 2026-11-01

  # Direct task lookup (shortcut for: taskdo tasks show <id>)
  taskdo 12
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		l, closer, err := openLog(envOr("TASKDO_LOG", ""))
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log, app.logFile = l, closer
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.logFile != nil {
			_ = app.logFile.Close()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api-url", "", "Task API base URL (default: $TASKDO_API_URL, config apiUrl, http://localhost:8000)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKDO_FORMAT", "json"), "Output format (json|table)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	svc := app.service(cfg)
	return tui.Run(tui.Options{
		Service: svc,
		Config:  cfg,
		Logger:  app.logger(),
		Version: Version,
	})
}

// service resolves the API URL (flag > env > config > default) and builds
// the client.
func (app *App) service(cfg *config.Config) api.Service {
	return api.New(config.ResolveAPIURL(app.APIURL, cfg), api.WithLogger(app.logger()))
}

func (app *App) logger() *slog.Logger {
	if app.log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return app.log
}

// openLog returns a debug logger writing to path, or a discarding logger
// when path is empty.
func openLog(path string) (*slog.Logger, io.Closer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
