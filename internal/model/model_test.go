package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDraftNormalize_RejectsWhitespaceTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := (Draft{Title: title}).Normalize(); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
	}
}

func TestDraftNormalize_TrimsAndValidatesDate(t *testing.T) {
	d, err := (Draft{Title: "  Buy milk ", Description: " two litres ", DueDate: " 2024-05-01 "}).Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if d.Title != "Buy milk" || d.Description != "two litres" || d.DueDate != "2024-05-01" {
		t.Fatalf("unexpected normalized draft: %#v", d)
	}

	if _, err := (Draft{Title: "x", DueDate: "05/01/2024"}).Normalize(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestPatchMarshal_OmitsUnsetAndKeepsNull(t *testing.T) {
	b, err := json.Marshal(CompletedPatch(true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"completed":true}` {
		t.Fatalf("unexpected completed patch body: %s", b)
	}

	b, err = json.Marshal(Draft{Title: "A2"}.EditPatch())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["title"] != "A2" || got["description"] != "" {
		t.Fatalf("unexpected edit patch body: %s", b)
	}
	if v, ok := got["due_date"]; !ok || v != nil {
		t.Fatalf("expected due_date to be sent as null, got %s", b)
	}
	if _, ok := got["completed"]; ok {
		t.Fatalf("edit patch must not touch completed: %s", b)
	}
}

func TestPatchUnmarshal_DistinguishesAbsentFromNull(t *testing.T) {
	var p Patch
	if err := json.Unmarshal([]byte(`{"due_date":null,"completed":false}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Title != nil || p.Description.Set {
		t.Fatalf("absent fields must stay unset: %#v", p)
	}
	if !p.DueDate.Set || p.DueDate.Value != nil {
		t.Fatalf("expected due_date cleared, got %#v", p.DueDate)
	}
	if p.Completed == nil || *p.Completed {
		t.Fatalf("expected completed=false, got %#v", p.Completed)
	}

	if err := json.Unmarshal([]byte(`{"title":null}`), &p); err == nil {
		t.Fatalf("expected null title to be rejected")
	}
}

func TestPatchApply_DoesNotAliasInput(t *testing.T) {
	desc := "old"
	task := Task{ID: 1, Title: "A", Description: &desc}
	out := Draft{Title: "B", Description: "new"}.EditPatch().Apply(task)
	if out.Title != "B" || out.DescriptionText() != "new" {
		t.Fatalf("unexpected patched task: %#v", out)
	}
	if task.Title != "A" || *task.Description != "old" {
		t.Fatalf("input task was mutated: %#v", task)
	}
}

func TestDueStatusOf(t *testing.T) {
	now := time.Date(2026, 10, 17, 15, 30, 0, 0, time.Local)
	day := func(s string) Task { return Task{ID: 1, Title: "x", DueDate: &s} }

	cases := []struct {
		task Task
		want DueStatus
	}{
		{Task{ID: 1, Title: "x"}, DueNone},
		{day("2026-10-16"), DueOverdue},
		{day("2026-10-17"), DueToday},
		{day("2026-10-18"), DueFuture},
		{day("garbage"), DueNone},
	}
	for _, tc := range cases {
		if got := DueStatusOf(tc.task, now); got != tc.want {
			t.Fatalf("DueStatusOf(%v) = %s want %s", tc.task.DueDate, got, tc.want)
		}
	}
}
