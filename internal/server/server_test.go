package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"taskdo/internal/api"
	"taskdo/internal/model"
)

func newTestServer(t *testing.T) (*api.Client, *DB) {
	t.Helper()
	db, err := OpenDB(context.Background(), filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	h, err := New(db, nil).Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return api.New(ts.URL), db
}

func strp(s string) *string { return &s }

func TestServer_CRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestServer(t)

	created, err := c.Create(ctx, model.CreateRequest{Title: "Write report", Description: strp("q3"), DueDate: strp("2026-01-02")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.Completed {
		t.Fatalf("unexpected created task: %#v", created)
	}

	if _, err := c.Create(ctx, model.CreateRequest{Title: "Second"}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	tasks, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != created.ID || tasks[1].Title != "Second" {
		t.Fatalf("unexpected list order: %#v", tasks)
	}
	if tasks[1].Description != nil || tasks[1].DueDate != nil {
		t.Fatalf("expected null description and due date, got %#v", tasks[1])
	}

	updated, err := c.Update(ctx, created.ID, model.CompletedPatch(true))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed || updated.Title != "Write report" || updated.DescriptionText() != "q3" {
		t.Fatalf("partial update clobbered fields: %#v", updated)
	}

	cleared, err := c.Update(ctx, created.ID, model.Patch{DueDate: model.Field[string]{Set: true}})
	if err != nil {
		t.Fatalf("clear due: %v", err)
	}
	if cleared.DueDate != nil || !cleared.Completed {
		t.Fatalf("expected due date cleared only, got %#v", cleared)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.Get(ctx, created.ID); !api.IsNotFound(err) {
		t.Fatalf("expected 404 after delete, got %v", err)
	}
}

func TestServer_ErrorDetails(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestServer(t)

	err := c.Delete(ctx, 42)
	if !api.IsNotFound(err) || api.Message(err) != "Task with id 42 not found" {
		t.Fatalf("unexpected delete error: %v", err)
	}

	_, err = c.Update(ctx, 42, model.CompletedPatch(true))
	if api.Message(err) != "Task with id 42 not found" {
		t.Fatalf("unexpected update error: %v", err)
	}

	t1, _ := c.Create(ctx, model.CreateRequest{Title: "x"})
	_, err = c.Update(ctx, t1.ID, model.Patch{})
	if api.Message(err) != "No fields provided for update" {
		t.Fatalf("expected empty-patch error, got %v", err)
	}

	_, err = c.Create(ctx, model.CreateRequest{Title: "   "})
	var ae *api.Error
	if err == nil || !errors.As(err, &ae) || ae.Status != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for blank title, got %v", err)
	}

	_, err = c.Create(ctx, model.CreateRequest{Title: "x", DueDate: strp("tomorrow")})
	if api.Message(err) != "due_date must be YYYY-MM-DD" {
		t.Fatalf("expected date validation, got %v", err)
	}
}

func TestServer_EchoesRequestID(t *testing.T) {
	db, err := OpenDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	h, err := New(db, nil).Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(api.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(api.RequestIDHeader); got != "abc-123" {
		t.Fatalf("request id not echoed: %q", got)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))
	if rec.Header().Get(api.RequestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}
}

func TestServer_CompressesLargeResponses(t *testing.T) {
	ctx := context.Background()
	db, err := OpenDB(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	for i := 0; i < 50; i++ {
		if _, err := db.Create(ctx, model.CreateRequest{Title: fmt.Sprintf("task %02d %s", i, strings.Repeat("x", 40))}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	h, err := New(db, nil).Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if got := rec.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip response, got %q", got)
	}
}

func TestOpenDB_AddsDueDateColumnToOldSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "old.db")

	raw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw: %v", err)
	}
	if _, err := raw.ExecContext(ctx, `CREATE TABLE tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		completed BOOLEAN DEFAULT 0
	)`); err != nil {
		t.Fatalf("create old schema: %v", err)
	}
	if _, err := raw.ExecContext(ctx, `INSERT INTO tasks (title, completed) VALUES ('legacy', 1)`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_ = raw.Close()

	db, err := OpenDB(ctx, path)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	defer db.Close()

	tasks, err := db.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "legacy" || !tasks[0].Completed || tasks[0].DueDate != nil {
		t.Fatalf("unexpected migrated rows: %#v", tasks)
	}

	got, err := db.Update(ctx, tasks[0].ID, model.Patch{DueDate: model.Field[string]{Set: true, Value: strp("2026-03-04")}})
	if err != nil {
		t.Fatalf("update due: %v", err)
	}
	if got.DueDate == nil || *got.DueDate != "2026-03-04" {
		t.Fatalf("due date not stored: %#v", got)
	}
}
