package tui

import (
	"bytes"
	"strings"
	"testing"

	"taskdo/internal/i18n"
	"taskdo/internal/model"
	"taskdo/internal/mutate"

	"github.com/charmbracelet/bubbles/list"
	xansi "github.com/charmbracelet/x/ansi"
)

func renderRow(t *testing.T, it taskItem, width int) string {
	t.Helper()
	l := newList([]list.Item{it})
	l.SetSize(width, 5)
	var buf bytes.Buffer
	newTaskDelegate().Render(&buf, l, 0, it)
	return xansi.Strip(buf.String())
}

func TestTaskDelegate_RendersCheckboxTitleAndDue(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	task := model.Task{ID: 1, Title: "Pay rent", DueDate: strp("2026-10-01"), Completed: true}
	label, due := dueLabel(i18n.New("en"), task, testNow)
	out := renderRow(t, taskItem{task: task, due: due, dueLabel: label}, 60)

	for _, want := range []string{"[x]", "Pay rent", "Overdue: 2026-10-01"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if w := xansi.StringWidth(out); w != 60 {
		t.Fatalf("expected row width 60, got %d", w)
	}
}

func TestTaskDelegate_TruncatesLongTitles(t *testing.T) {
	task := model.Task{ID: 1, Title: strings.Repeat("long ", 40)}
	out := renderRow(t, taskItem{task: task}, 30)
	if w := xansi.StringWidth(out); w != 30 {
		t.Fatalf("expected row width 30, got %d", w)
	}
	if !strings.Contains(out, "…") {
		t.Fatalf("expected ellipsis in %q", out)
	}
}

func TestTaskDelegate_MarkersShowPendingGlyph(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	task := model.Task{ID: 1, Title: "a"}
	if out := renderRow(t, taskItem{task: task, marker: mutate.MarkToggling}, 20); !strings.Contains(out, "a ~") {
		t.Fatalf("expected pending glyph for toggling row, got %q", out)
	}
	if out := renderRow(t, taskItem{task: task, marker: mutate.MarkAdded}, 20); !strings.Contains(out, "a +") {
		t.Fatalf("expected added glyph, got %q", out)
	}
}

func TestDueLabel(t *testing.T) {
	tr := i18n.New("en")
	cases := []struct {
		due  *string
		want string
		st   model.DueStatus
	}{
		{nil, "", model.DueNone},
		{strp("2026-10-16"), "Overdue: 2026-10-16", model.DueOverdue},
		{strp("2026-10-17"), "Due today", model.DueToday},
		{strp("2026-10-18"), "Due 2026-10-18", model.DueFuture},
	}
	for _, tc := range cases {
		got, st := dueLabel(tr, model.Task{Title: "x", DueDate: tc.due}, testNow)
		if got != tc.want || st != tc.st {
			t.Fatalf("dueLabel(%v) = %q/%s want %q/%s", tc.due, got, st, tc.want, tc.st)
		}
	}
}
