// Package taskstore holds the client-side ordered cache of tasks.
package taskstore

import (
	"taskdo/internal/model"
)

// Store is an ordered, id-unique collection of tasks mirrored from the API.
// It is owned by a single session and is not safe for concurrent use.
type Store struct {
	tasks  []model.Task
	loaded bool
}

// Snapshot is an immutable copy of the store contents used for rollback.
type Snapshot struct {
	tasks []model.Task
}

func (s Snapshot) Len() int { return len(s.tasks) }

func New(tasks ...model.Task) *Store {
	s := &Store{}
	s.tasks = dedupe(tasks)
	return s
}

// Reset replaces the whole sequence with a freshly listed task set and marks
// the store as loaded. Duplicate ids keep their first occurrence.
func (s *Store) Reset(tasks []model.Task) {
	s.tasks = dedupe(tasks)
	s.loaded = true
}

// Loaded reports whether a load has ever succeeded.
func (s *Store) Loaded() bool { return s.loaded }

func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of the ordered sequence.
func (s *Store) Tasks() []model.Task {
	return cloneAll(s.tasks)
}

func (s *Store) Get(id int64) (model.Task, bool) {
	i := s.Index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Index returns the position of id, or -1.
func (s *Store) Index(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Insert appends t. A task already carrying t.ID is replaced in place.
func (s *Store) Insert(t model.Task) {
	if i := s.Index(t.ID); i >= 0 {
		s.tasks[i] = t.Clone()
		return
	}
	s.tasks = append(s.tasks, t.Clone())
}

// Replace substitutes the task matching id. Any other task already carrying
// t.ID is dropped so ids stay unique.
func (s *Store) Replace(id int64, t model.Task) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.tasks[i] = t.Clone()
	if t.ID != id {
		for j := len(s.tasks) - 1; j >= 0; j-- {
			if j != i && s.tasks[j].ID == t.ID {
				s.tasks = append(s.tasks[:j], s.tasks[j+1:]...)
			}
		}
	}
	return true
}

// PatchLocal applies p to the task matching id without server confirmation.
func (s *Store) PatchLocal(id int64, p model.Patch) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.tasks[i] = p.Apply(s.tasks[i])
	return true
}

func (s *Store) Remove(id int64) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{tasks: cloneAll(s.tasks)}
}

// Restore replaces the whole sequence with a prior snapshot.
func (s *Store) Restore(snap Snapshot) {
	s.tasks = cloneAll(snap.tasks)
}

func cloneAll(in []model.Task) []model.Task {
	out := make([]model.Task, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

// dedupe copies tasks keeping the first occurrence of each id.
func dedupe(in []model.Task) []model.Task {
	seen := make(map[int64]bool, len(in))
	out := make([]model.Task, 0, len(in))
	for _, t := range in {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t.Clone())
	}
	return out
}
