package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"taskdo/internal/model"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("task not found")

// DB is the sqlite-backed task table behind `taskdo serve`.
type DB struct {
	db *sql.DB
}

// OpenDB opens (and migrates) the task database at path.
func OpenDB(ctx context.Context, path string) (*DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error { return d.db.Close() }

func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		completed BOOLEAN DEFAULT 0,
		due_date TEXT
	)`); err != nil {
		return fmt.Errorf("create tasks: %w", err)
	}

	// Databases created before due dates existed lack the column.
	rows, err := db.QueryContext(ctx, `PRAGMA table_info(tasks)`)
	if err != nil {
		return err
	}
	hasDue := false
	for rows.Next() {
		var (
			cid     int
			name    string
			typ     string
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &typ, &notnull, &dflt, &pk); err != nil {
			_ = rows.Close()
			return err
		}
		if name == "due_date" {
			hasDue = true
		}
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if !hasDue {
		if _, err := db.ExecContext(ctx, `ALTER TABLE tasks ADD COLUMN due_date TEXT`); err != nil {
			return fmt.Errorf("add due_date: %w", err)
		}
	}
	return nil
}

const selectTask = `SELECT id, title, description, completed, due_date FROM tasks`

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t    model.Task
		desc sql.NullString
		due  sql.NullString
	)
	if err := s.Scan(&t.ID, &t.Title, &desc, &t.Completed, &due); err != nil {
		return model.Task{}, err
	}
	if desc.Valid {
		t.Description = &desc.String
	}
	if due.Valid {
		t.DueDate = &due.String
	}
	return t, nil
}

func (d *DB) List(ctx context.Context) ([]model.Task, error) {
	rows, err := d.db.QueryContext(ctx, selectTask+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (d *DB) Get(ctx context.Context, id int64) (model.Task, error) {
	t, err := scanTask(d.db.QueryRowContext(ctx, selectTask+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	return t, err
}

func (d *DB) Create(ctx context.Context, req model.CreateRequest) (model.Task, error) {
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, completed, due_date) VALUES (?, ?, 0, ?)`,
		req.Title, nullable(req.Description), nullable(req.DueDate),
	)
	if err != nil {
		return model.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, err
	}
	return model.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}.Clone(), nil
}

// Update applies the set fields of p and returns the stored row.
func (d *DB) Update(ctx context.Context, id int64, p model.Patch) (model.Task, error) {
	var (
		sets []string
		args []any
	)
	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Description.Set {
		sets = append(sets, "description = ?")
		args = append(args, nullable(p.Description.Value))
	}
	if p.DueDate.Set {
		sets = append(sets, "due_date = ?")
		args = append(args, nullable(p.DueDate.Value))
	}
	if p.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *p.Completed)
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if len(sets) > 0 {
		args = append(args, id)
		res, err := tx.ExecContext(ctx, `UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
		if err != nil {
			return model.Task{}, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return model.Task{}, ErrNotFound
		}
	}
	t, err := scanTask(tx.QueryRowContext(ctx, selectTask+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	return t, tx.Commit()
}

func (d *DB) Delete(ctx context.Context, id int64) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
