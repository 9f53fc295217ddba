package taskstore

import (
	"reflect"
	"testing"

	"taskdo/internal/model"
)

func ids(s *Store) []int64 {
	var out []int64
	for _, t := range s.Tasks() {
		out = append(out, t.ID)
	}
	return out
}

func TestStore_InsertKeepsOrderAndUniqueness(t *testing.T) {
	s := New()
	s.Insert(model.Task{ID: 1, Title: "A"})
	s.Insert(model.Task{ID: 2, Title: "B"})
	s.Insert(model.Task{ID: 1, Title: "A'"})

	if got := ids(s); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("unexpected ids: %v", got)
	}
	if tk, _ := s.Get(1); tk.Title != "A'" {
		t.Fatalf("expected duplicate insert to replace in place, got %q", tk.Title)
	}
}

func TestStore_ReplaceWithDifferentIDDropsCollision(t *testing.T) {
	s := New(model.Task{ID: 1, Title: "A"}, model.Task{ID: 2, Title: "B"})
	if !s.Replace(1, model.Task{ID: 2, Title: "merged"}) {
		t.Fatalf("expected replace to find id 1")
	}
	if got := ids(s); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("expected a single task with id 2, got %v", got)
	}
	if s.Replace(99, model.Task{ID: 99}) {
		t.Fatalf("replace of missing id must report false")
	}
}

func TestStore_SnapshotIsIsolatedFromLaterMutations(t *testing.T) {
	desc := "d"
	s := New(model.Task{ID: 1, Title: "A", Description: &desc})
	snap := s.Snapshot()

	s.PatchLocal(1, model.Draft{Title: "Z", Description: "changed"}.EditPatch())
	s.Remove(1)
	s.Insert(model.Task{ID: 5, Title: "new"})

	s.Restore(snap)
	want := []model.Task{{ID: 1, Title: "A", Description: &desc}}
	if got := s.Tasks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("restore mismatch:\n got %#v\nwant %#v", got, want)
	}
}

func TestStore_TasksReturnsCopies(t *testing.T) {
	s := New(model.Task{ID: 1, Title: "A"})
	ts := s.Tasks()
	ts[0].Title = "mutated"
	if tk, _ := s.Get(1); tk.Title != "A" {
		t.Fatalf("store leaked its backing slice")
	}
}

func TestStore_ResetDeduplicatesAndMarksLoaded(t *testing.T) {
	s := New(model.Task{ID: 9, Title: "old"})
	if s.Loaded() {
		t.Fatalf("new store must not report loaded")
	}
	s.Reset([]model.Task{{ID: 1, Title: "A"}, {ID: 1, Title: "dup"}, {ID: 2, Title: "B"}})
	if !s.Loaded() {
		t.Fatalf("expected loaded after reset")
	}
	if got := ids(s); !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("ids = %v, want [1 2]", got)
	}
	if tk, _ := s.Get(1); tk.Title != "A" {
		t.Fatalf("expected first occurrence kept, got %q", tk.Title)
	}
}
