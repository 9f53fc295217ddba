package router

import (
	"testing"

	"taskdo/internal/i18n"
)

func TestRouter_InitialStateIsList(t *testing.T) {
	r := New()
	if r.Screen() != ScreenList {
		t.Fatalf("expected list, got %s", r.Screen())
	}
	if _, ok := r.Selected(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestRouter_Transitions(t *testing.T) {
	cases := []struct {
		name   string
		run    func(r *Router)
		screen Screen
		selID  int64
		hasSel bool
	}{
		{"select task", func(r *Router) { r.Select(4) }, ScreenDetail, 4, true},
		{"close detail", func(r *Router) { r.Select(4); r.CloseDetail() }, ScreenList, 0, false},
		{"new task clears selection", func(r *Router) { r.Select(4); r.NewTask() }, ScreenAdd, 0, false},
		{"cancel add", func(r *Router) { r.NewTask(); r.CancelAdd() }, ScreenList, 0, false},
		{"menu entry", func(r *Router) { r.Select(4); r.SelectMenu(ScreenSettings) }, ScreenSettings, 0, false},
		{"go home", func(r *Router) { r.SelectMenu(ScreenAbout); r.GoHome() }, ScreenList, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			tc.run(r)
			if r.Screen() != tc.screen {
				t.Fatalf("screen=%s want %s", r.Screen(), tc.screen)
			}
			id, ok := r.Selected()
			if ok != tc.hasSel || id != tc.selID {
				t.Fatalf("selected=(%d,%v) want (%d,%v)", id, ok, tc.selID, tc.hasSel)
			}
		})
	}
}

func TestRouter_SelectMenuRejectsNonMenuScreens(t *testing.T) {
	r := New()
	if r.SelectMenu(ScreenDetail) || r.SelectMenu(ScreenAdd) {
		t.Fatalf("detail/add are not menu entries")
	}
	if r.Screen() != ScreenList {
		t.Fatalf("screen changed on rejected menu selection: %s", r.Screen())
	}
}

func TestRouter_MenuClosesOnlyOnNarrowViewports(t *testing.T) {
	r := New()
	r.ToggleMenu()
	r.SelectMenu(ScreenProfile)
	if !r.MenuOpen() {
		t.Fatalf("wide viewport: menu should stay open after selection")
	}

	r.SetNarrow(true)
	r.SelectMenu(ScreenAbout)
	if r.MenuOpen() {
		t.Fatalf("narrow viewport: menu should close after selection")
	}
}

func TestRouter_TaskDeletedOnlyAffectsSelectedTask(t *testing.T) {
	r := New()
	r.Select(2)
	if r.TaskDeleted(3) {
		t.Fatalf("deleting another task must not navigate")
	}
	if r.Screen() != ScreenDetail {
		t.Fatalf("expected to remain on detail")
	}
	if !r.TaskDeleted(2) || r.Screen() != ScreenList {
		t.Fatalf("deleting the selected task must return to list; screen=%s", r.Screen())
	}
}

func TestParseScreen(t *testing.T) {
	for _, s := range []Screen{ScreenList, ScreenAdd, ScreenDetail, ScreenProfile, ScreenSettings, ScreenAbout} {
		got, ok := ParseScreen(s.String())
		if !ok || got != s {
			t.Fatalf("ParseScreen(%q) = %v,%v", s.String(), got, ok)
		}
	}
	if _, ok := ParseScreen("nope"); ok {
		t.Fatalf("expected unknown screen to fail")
	}
}

func TestRouter_TitleDependsOnViewport(t *testing.T) {
	tr := i18n.New("en")
	r := New()
	if got := r.Title(tr); got != "My tasks" {
		t.Fatalf("wide list title: %q", got)
	}
	r.SetNarrow(true)
	if got := r.Title(tr); got != "Tasks" {
		t.Fatalf("narrow list title: %q", got)
	}
	r.NewTask()
	if got := r.Title(tr); got != "New task" {
		t.Fatalf("add title: %q", got)
	}
	r.SelectMenu(ScreenAbout)
	if got := r.Title(i18n.New("hu")); got != "Névjegy" {
		t.Fatalf("hu about title: %q", got)
	}
}
