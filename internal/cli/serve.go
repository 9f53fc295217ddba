package cli

import (
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"taskdo/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the task REST API backed by sqlite",
		Example: strings.TrimSpace(`
# Serve on the default port with ./tasks.db
taskdo serve

# Serve somewhere else
taskdo serve --addr 127.0.0.1:9000 --db ~/tasks.db
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(addr) == "" {
				return writeErr(cmd, fmt.Errorf("serve: missing --addr"))
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			err := server.Run(ctx, server.Config{Addr: addr, DBPath: dbPath, Logger: logger}, func(actual string) {
				_ = writeOut(cmd, app, map[string]any{
					"data": map[string]any{
						"addr":      actual,
						"url":       "http://" + actual,
						"db":        dbPath,
						"startedAt": time.Now().UTC().Format(time.RFC3339Nano),
					},
				})
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr("TASKDO_ADDR", ":8000"), "Bind address (host:port or :port)")
	cmd.Flags().StringVar(&dbPath, "db", envOr("TASKDO_DB", "tasks.db"), "Path to the sqlite database")
	return cmd
}
