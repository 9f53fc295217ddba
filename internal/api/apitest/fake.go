// Package apitest provides an in-memory api.Service for tests.
package apitest

import (
	"context"
	"fmt"
	"sync"

	"taskdo/internal/api"
	"taskdo/internal/model"
)

// FakeService is an in-memory implementation of api.Service.
type FakeService struct {
	mu     sync.Mutex
	tasks  []model.Task
	nextID int64
	calls  map[string]int

	// Error injection for testing
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// UpdateHook, when set, replaces the default update behaviour.
	UpdateHook func(id int64, p model.Patch) (model.Task, error)
}

var _ api.Service = (*FakeService)(nil)

// NewFakeService creates a fake seeded with tasks. Ids of new tasks continue
// after the highest seeded id.
func NewFakeService(seed ...model.Task) *FakeService {
	f := &FakeService{calls: map[string]int{}}
	for _, t := range seed {
		f.tasks = append(f.tasks, t.Clone())
		if t.ID > f.nextID {
			f.nextID = t.ID
		}
	}
	return f
}

// Calls returns how many times op ("list", "get", "create", "update",
// "delete") was invoked.
func (f *FakeService) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// Tasks returns a copy of the server-side task set.
func (f *FakeService) Tasks() []model.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t.Clone())
	}
	return out
}

func (f *FakeService) List(ctx context.Context) ([]model.Task, error) {
	f.mu.Lock()
	f.calls["list"]++
	f.mu.Unlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Tasks(), nil
}

func (f *FakeService) Get(ctx context.Context, id int64) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["get"]++
	if f.GetErr != nil {
		return model.Task{}, f.GetErr
	}
	i := f.indexLocked(id)
	if i < 0 {
		return model.Task{}, notFound("get", id)
	}
	return f.tasks[i].Clone(), nil
}

func (f *FakeService) Create(ctx context.Context, req model.CreateRequest) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++
	if f.CreateErr != nil {
		return model.Task{}, f.CreateErr
	}
	f.nextID++
	t := model.Task{
		ID:          f.nextID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}.Clone()
	f.tasks = append(f.tasks, t)
	return t.Clone(), nil
}

func (f *FakeService) Update(ctx context.Context, id int64, p model.Patch) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["update"]++
	if f.UpdateErr != nil {
		return model.Task{}, f.UpdateErr
	}
	if f.UpdateHook != nil {
		return f.UpdateHook(id, p)
	}
	i := f.indexLocked(id)
	if i < 0 {
		return model.Task{}, notFound("update", id)
	}
	f.tasks[i] = p.Apply(f.tasks[i])
	return f.tasks[i].Clone(), nil
}

func (f *FakeService) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["delete"]++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	i := f.indexLocked(id)
	if i < 0 {
		return notFound("delete", id)
	}
	f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	return nil
}

func (f *FakeService) indexLocked(id int64) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func notFound(op string, id int64) error {
	return &api.Error{Op: op, Status: 404, Message: fmt.Sprintf("Task with id %d not found", id)}
}
