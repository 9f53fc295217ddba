// Package mutate sequences optimistic task mutations against the local store
// and the remote API.
package mutate

import (
	"context"
	"io"
	"log/slog"
	"time"

	"taskdo/internal/api"
	"taskdo/internal/model"
	"taskdo/internal/router"
	"taskdo/internal/taskstore"

	tea "github.com/charmbracelet/bubbletea"
)

// Animation windows that are part of the observable contract.
const (
	AddHighlight    = 500 * time.Millisecond
	DeleteAnimation = 300 * time.Millisecond
	ToggleAnimation = 400 * time.Millisecond
	ToggleSettle    = 100 * time.Millisecond
)

type Op int

const (
	OpNone Op = iota
	OpLoad
	OpAdd
	OpToggle
	OpEdit
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpLoad:
		return "load"
	case OpAdd:
		return "add"
	case OpToggle:
		return "toggle"
	case OpEdit:
		return "edit"
	case OpDelete:
		return "delete"
	default:
		return "none"
	}
}

// Ticker schedules fn after d. tea.Tick in production; tests substitute an
// immediate ticker.
type Ticker func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Result reports what an Update call did. Completed is OpNone unless a
// network operation finished.
type Result struct {
	Handled   bool
	Completed Op
	TaskID    int64
	Err       error
}

type loadedMsg struct {
	tasks []model.Task
	err   error
}

type createdMsg struct {
	task model.Task
	err  error
}

type highlightDoneMsg struct {
	id  int64
	seq uint64
}

type toggledMsg struct {
	id   int64
	snap taskstore.Snapshot
	err  error
}

type editedMsg struct {
	id   int64
	snap taskstore.Snapshot
	task model.Task
	err  error
}

type deleteWindowMsg struct {
	id   int64
	seq  uint64
	snap taskstore.Snapshot
}

type deletedMsg struct {
	id   int64
	seq  uint64
	snap taskstore.Snapshot
	err  error
}

// Coordinator owns the optimistic mutation flows. It must only be driven
// from a single goroutine (the bubbletea update loop); the commands it
// returns do the blocking work and report back through Update.
type Coordinator struct {
	ctx    context.Context
	svc    api.Service
	store  *taskstore.Store
	router *router.Router
	log    *slog.Logger
	tick   Ticker

	markers    *Markers
	loading    bool
	submitting bool
	err        error
	seq        uint64
}

type Option func(*Coordinator)

func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

func WithTicker(t Ticker) Option {
	return func(c *Coordinator) { c.tick = t }
}

func WithContext(ctx context.Context) Option {
	return func(c *Coordinator) { c.ctx = ctx }
}

func New(svc api.Service, st *taskstore.Store, r *router.Router, opts ...Option) *Coordinator {
	c := &Coordinator{
		ctx:     context.Background(),
		svc:     svc,
		store:   st,
		router:  r,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		tick:    tea.Tick,
		markers: newMarkers(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Coordinator) Store() *taskstore.Store { return c.store }

func (c *Coordinator) Router() *router.Router { return c.router }

func (c *Coordinator) Markers() *Markers { return c.markers }

func (c *Coordinator) Loading() bool { return c.loading }

// Submitting reports whether an add is in flight (the add form is disabled).
func (c *Coordinator) Submitting() bool { return c.submitting }

// Err returns the last error (LoadError or MutationError), or nil.
func (c *Coordinator) Err() error { return c.err }

func (c *Coordinator) DismissError() { c.err = nil }

func (c *Coordinator) nextSeq() uint64 {
	c.seq++
	return c.seq
}

// Load fetches the full task set. A failed refresh keeps the tasks already
// shown; only the error banner changes.
func (c *Coordinator) Load() tea.Cmd {
	if c.loading {
		return nil
	}
	c.loading = true
	c.err = nil
	svc, ctx := c.svc, c.ctx
	return func() tea.Msg {
		tasks, err := svc.List(ctx)
		return loadedMsg{tasks: tasks, err: err}
	}
}

// Add creates a task. It returns model.ErrEmptyTitle/ErrInvalidDate without
// contacting the API, and a nil command while another add is submitting.
func (c *Coordinator) Add(d model.Draft) (tea.Cmd, error) {
	d, err := d.Normalize()
	if err != nil {
		return nil, err
	}
	if c.submitting {
		return nil, nil
	}
	c.submitting = true
	c.err = nil
	c.markers.clearAll(MarkAdded)

	svc, ctx, req := c.svc, c.ctx, d.CreateRequest()
	return func() tea.Msg {
		t, err := svc.Create(ctx, req)
		return createdMsg{task: t, err: err}
	}, nil
}

// Toggle sets the completion flag of id. Only one toggle may be in flight;
// extra calls are dropped, not queued.
func (c *Coordinator) Toggle(id int64, completed bool) tea.Cmd {
	if _, busy := c.markers.Any(MarkToggling); busy {
		return nil
	}
	if c.markers.Has(id, MarkEditing|MarkDeleting|MarkPendingDelete) {
		return nil
	}
	if _, ok := c.store.Get(id); !ok {
		return nil
	}

	snap := c.store.Snapshot()
	c.markers.own(id, MarkToggling, c.nextSeq())
	c.err = nil
	p := model.CompletedPatch(completed)
	c.store.PatchLocal(id, p)

	svc, ctx := c.svc, c.ctx
	return func() tea.Msg {
		_, err := svc.Update(ctx, id, p)
		return toggledMsg{id: id, snap: snap, err: err}
	}
}

// Edit saves title/description/due date of id. Validation failures are
// returned without touching the store or the API; a concurrent edit makes
// this a no-op.
func (c *Coordinator) Edit(id int64, d model.Draft) (tea.Cmd, error) {
	d, err := d.Normalize()
	if err != nil {
		return nil, err
	}
	if _, busy := c.markers.Any(MarkEditing); busy {
		return nil, nil
	}
	if c.markers.Has(id, MarkToggling|MarkDeleting|MarkPendingDelete) {
		return nil, nil
	}
	if _, ok := c.store.Get(id); !ok {
		return nil, nil
	}

	snap := c.store.Snapshot()
	c.markers.own(id, MarkEditing, c.nextSeq())
	c.err = nil
	p := d.EditPatch()
	c.store.PatchLocal(id, p)

	svc, ctx := c.svc, c.ctx
	return func() tea.Msg {
		t, err := svc.Update(ctx, id, p)
		return editedMsg{id: id, snap: snap, task: t, err: err}
	}, nil
}

// Delete plays the exit animation, removes id locally after
// DeleteAnimation, then calls the API. Deletes of different tasks overlap
// freely; a second delete of the same task is ignored while pending, as is a
// delete of a task with a toggle or edit in flight.
func (c *Coordinator) Delete(id int64) tea.Cmd {
	if c.markers.Has(id, MarkToggling|MarkEditing|MarkDeleting|MarkPendingDelete) {
		return nil
	}
	if _, ok := c.store.Get(id); !ok {
		return nil
	}

	snap := c.store.Snapshot()
	seq := c.nextSeq()
	c.markers.own(id, MarkDeleting|MarkPendingDelete, seq)
	c.err = nil
	c.router.TaskDeleted(id)

	return c.tick(DeleteAnimation, func(time.Time) tea.Msg {
		return deleteWindowMsg{id: id, seq: seq, snap: snap}
	})
}

// Update applies coordinator messages. Messages it does not own are
// reported with Handled == false.
func (c *Coordinator) Update(msg tea.Msg) (Result, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		c.loading = false
		if msg.err != nil {
			c.err = LoadError{Message: messageOr(msg.err, FallbackLoad), Err: msg.err}
			c.log.Debug("load tasks failed", "error", msg.err)
			return Result{Handled: true, Completed: OpLoad, Err: c.err}, nil
		}
		c.store.Reset(msg.tasks)
		return Result{Handled: true, Completed: OpLoad}, nil

	case createdMsg:
		c.submitting = false
		if msg.err != nil {
			c.fail(OpAdd, 0, msg.err, FallbackAdd)
			return Result{Handled: true, Completed: OpAdd, Err: c.err}, nil
		}
		c.store.Insert(msg.task)
		c.router.GoHome()
		seq := c.nextSeq()
		c.markers.own(msg.task.ID, MarkAdded, seq)
		id := msg.task.ID
		return Result{Handled: true, Completed: OpAdd, TaskID: id}, c.tick(AddHighlight, func(time.Time) tea.Msg {
			return highlightDoneMsg{id: id, seq: seq}
		})

	case highlightDoneMsg:
		c.markers.release(msg.id, MarkAdded, msg.seq)
		return Result{Handled: true}, nil

	case toggledMsg:
		c.markers.clear(msg.id, MarkToggling)
		if msg.err != nil {
			c.store.Restore(msg.snap)
			c.fail(OpToggle, msg.id, msg.err, FallbackToggle)
			return Result{Handled: true, Completed: OpToggle, TaskID: msg.id, Err: c.err}, nil
		}
		return Result{Handled: true, Completed: OpToggle, TaskID: msg.id}, nil

	case editedMsg:
		c.markers.clear(msg.id, MarkEditing)
		if msg.err != nil {
			c.store.Restore(msg.snap)
			c.fail(OpEdit, msg.id, msg.err, FallbackEdit)
			return Result{Handled: true, Completed: OpEdit, TaskID: msg.id, Err: c.err}, nil
		}
		// The server's copy is authoritative over the optimistic values.
		c.store.Replace(msg.id, msg.task)
		return Result{Handled: true, Completed: OpEdit, TaskID: msg.id}, nil

	case deleteWindowMsg:
		c.store.Remove(msg.id)
		c.markers.release(msg.id, MarkDeleting, msg.seq)
		svc, ctx := c.svc, c.ctx
		return Result{Handled: true}, func() tea.Msg {
			err := svc.Delete(ctx, msg.id)
			return deletedMsg{id: msg.id, seq: msg.seq, snap: msg.snap, err: err}
		}

	case deletedMsg:
		var res Result
		if msg.err != nil {
			c.store.Restore(msg.snap)
			c.fail(OpDelete, msg.id, msg.err, FallbackDelete)
			res = Result{Handled: true, Completed: OpDelete, TaskID: msg.id, Err: c.err}
		} else {
			res = Result{Handled: true, Completed: OpDelete, TaskID: msg.id}
		}
		c.markers.release(msg.id, MarkPendingDelete, msg.seq)
		return res, nil
	}
	return Result{}, nil
}

func (c *Coordinator) fail(op Op, id int64, err error, fallback string) {
	c.err = MutationError{Op: op, TaskID: id, Message: messageOr(err, fallback), Err: err}
	c.log.Debug("mutation failed", "op", op.String(), "task", id, "error", err)
}
