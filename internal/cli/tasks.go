package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskdo/internal/api"
	"taskdo/internal/config"
	"taskdo/internal/model"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Task commands",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksEditCmd(app))
	cmd.AddCommand(newTasksSetCompletedCmd(app, "done", "Mark a task complete", true))
	cmd.AddCommand(newTasksSetCompletedCmd(app, "undo", "Mark a task pending", false))
	cmd.AddCommand(newTasksRmCmd(app))

	return cmd
}

// withService loads the config and runs fn against the resolved API.
func withService(cmd *cobra.Command, app *App, fn func(ctx context.Context, svc api.Service) error) error {
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), api.Timeout)
	defer cancel()
	if err := fn(ctx, app.service(cfg)); err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func newTasksListCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			status = strings.ToLower(strings.TrimSpace(status))
			switch status {
			case "", "all", "open", "done":
			default:
				return writeErr(cmd, fmt.Errorf("invalid --status %q (expected all|open|done)", status))
			}
			return withService(cmd, app, func(ctx context.Context, svc api.Service) error {
				tasks, err := svc.List(ctx)
				if err != nil {
					return err
				}
				out := make([]model.Task, 0, len(tasks))
				for _, t := range tasks {
					switch {
					case status == "open" && t.Completed:
						continue
					case status == "done" && !t.Completed:
						continue
					}
					out = append(out, t)
				}
				done := 0
				for _, t := range out {
					if t.Completed {
						done++
					}
				}
				return writeOut(cmd, app, map[string]any{
					"data": out,
					"meta": map[string]any{"count": len(out), "done": done},
				})
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "Filter by status (all|open|done)")
	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return withService(cmd, app, func(ctx context.Context, svc api.Service) error {
				t, err := svc.Get(ctx, id)
				if err != nil {
					return err
				}
				return writeOut(cmd, app, map[string]any{"data": taskView(t, time.Now())})
			})
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	var d model.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(d.Title) == "" && len(args) > 0 {
				d.Title = strings.Join(args, " ")
			}
			nd, err := d.Normalize()
			if err != nil {
				return writeErr(cmd, err)
			}
			return withService(cmd, app, func(ctx context.Context, svc api.Service) error {
				t, err := svc.Create(ctx, nd.CreateRequest())
				if err != nil {
					return err
				}
				return writeOut(cmd, app, map[string]any{"data": t})
			})
		},
	}

	cmd.Flags().StringVar(&d.Title, "title", "", "Task title (or pass it as arguments)")
	cmd.Flags().StringVar(&d.Description, "description", "", "Task description (markdown)")
	cmd.Flags().StringVar(&d.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

func newTasksEditCmd(app *App) *cobra.Command {
	var title, description, due string

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Update title, description or due date",
		Long: strings.TrimSpace(`
Update the given fields of a task. Only flags that are passed are sent;
pass --due "" or --description "" to clear them.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := editPatch(cmd, title, description, due)
			if err != nil {
				return writeErr(cmd, err)
			}
			return withService(cmd, app, func(ctx context.Context, svc api.Service) error {
				t, err := svc.Update(ctx, id, p)
				if err != nil {
					return err
				}
				return writeOut(cmd, app, map[string]any{"data": t})
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description (empty clears)")
	cmd.Flags().StringVar(&due, "due", "", "New due date YYYY-MM-DD (empty clears)")
	return cmd
}

func editPatch(cmd *cobra.Command, title, description, due string) (model.Patch, error) {
	var p model.Patch
	if cmd.Flags().Changed("title") {
		t := strings.TrimSpace(title)
		if t == "" {
			return p, model.ErrEmptyTitle
		}
		p.Title = &t
	}
	if cmd.Flags().Changed("description") {
		d := strings.TrimSpace(description)
		p.Description = model.Field[string]{Set: true, Value: &d}
	}
	if cmd.Flags().Changed("due") {
		d := strings.TrimSpace(due)
		p.DueDate = model.Field[string]{Set: true}
		if d != "" {
			if _, err := time.Parse(model.DateLayout, d); err != nil {
				return p, model.ErrInvalidDate
			}
			p.DueDate.Value = &d
		}
	}
	if p.IsEmpty() {
		return p, fmt.Errorf("nothing to update: pass --title, --description or --due")
	}
	return p, nil
}

func newTasksSetCompletedCmd(app *App, use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return withService(cmd, app, func(ctx context.Context, svc api.Service) error {
				t, err := svc.Update(ctx, id, model.CompletedPatch(completed))
				if err != nil {
					return err
				}
				return writeOut(cmd, app, map[string]any{"data": t})
			})
		},
	}
}

func newTasksRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return withService(cmd, app, func(ctx context.Context, svc api.Service) error {
				if err := svc.Delete(ctx, id); err != nil {
					return err
				}
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": id, "deleted": true}})
			})
		},
	}
}

// taskView adds the derived due status to a task for `tasks show`.
func taskView(t model.Task, now time.Time) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"due_date":    t.DueDate,
		"completed":   t.Completed,
		"due_status":  model.DueStatusOf(t, now).String(),
	}
}
