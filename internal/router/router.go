// Package router tracks which screen is active and which task is selected.
package router

import (
	"strings"

	"taskdo/internal/i18n"
)

type Screen int

const (
	ScreenList Screen = iota
	ScreenAdd
	ScreenDetail
	ScreenProfile
	ScreenSettings
	ScreenAbout
)

// MenuScreens are the screens reachable from the navigation menu, in menu order.
var MenuScreens = []Screen{ScreenList, ScreenProfile, ScreenSettings, ScreenAbout}

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenAdd:
		return "add"
	case ScreenDetail:
		return "detail"
	case ScreenProfile:
		return "profile"
	case ScreenSettings:
		return "settings"
	case ScreenAbout:
		return "about"
	default:
		return "unknown"
	}
}

func ParseScreen(s string) (Screen, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list":
		return ScreenList, true
	case "add":
		return ScreenAdd, true
	case "detail":
		return ScreenDetail, true
	case "profile":
		return ScreenProfile, true
	case "settings":
		return ScreenSettings, true
	case "about":
		return ScreenAbout, true
	default:
		return ScreenList, false
	}
}

// Router is the view state machine. The zero value is not ready; use New.
type Router struct {
	screen   Screen
	selected int64
	hasSel   bool
	menuOpen bool
	narrow   bool
}

func New() *Router {
	return &Router{screen: ScreenList}
}

func (r *Router) Screen() Screen { return r.screen }

// Selected returns the detail task id; ok is false outside the detail screen.
func (r *Router) Selected() (int64, bool) {
	if r.screen != ScreenDetail || !r.hasSel {
		return 0, false
	}
	return r.selected, true
}

func (r *Router) MenuOpen() bool { return r.menuOpen }

func (r *Router) Narrow() bool { return r.narrow }

// Select opens the detail screen for id.
func (r *Router) Select(id int64) {
	r.selected = id
	r.hasSel = true
	r.screen = ScreenDetail
}

func (r *Router) CloseDetail() {
	r.clearSelection()
	r.screen = ScreenList
}

func (r *Router) NewTask() {
	r.clearSelection()
	r.screen = ScreenAdd
}

func (r *Router) CancelAdd() {
	r.screen = ScreenList
}

// GoHome returns to the list from anywhere.
func (r *Router) GoHome() {
	r.clearSelection()
	r.screen = ScreenList
}

// SelectMenu switches to a menu screen. Non-menu screens are ignored.
// On narrow viewports the menu closes.
func (r *Router) SelectMenu(s Screen) bool {
	if !isMenuScreen(s) {
		return false
	}
	r.clearSelection()
	r.screen = s
	if r.narrow {
		r.menuOpen = false
	}
	return true
}

// TaskDeleted forces the list screen when id is the task being shown.
func (r *Router) TaskDeleted(id int64) bool {
	if sel, ok := r.Selected(); ok && sel == id {
		r.clearSelection()
		r.screen = ScreenList
		return true
	}
	return false
}

func (r *Router) ToggleMenu() { r.menuOpen = !r.menuOpen }

func (r *Router) CloseMenu() { r.menuOpen = false }

// SetNarrow records the viewport class. The menu-open flag does not gate
// the visible screen on wide viewports; it only collapses the side menu.
func (r *Router) SetNarrow(narrow bool) { r.narrow = narrow }

func (r *Router) clearSelection() {
	r.selected = 0
	r.hasSel = false
}

func isMenuScreen(s Screen) bool {
	for _, m := range MenuScreens {
		if m == s {
			return true
		}
	}
	return false
}

// Title is the header text for the current screen. The list is titled
// differently on wide and narrow viewports.
func (r *Router) Title(tr *i18n.Translator) string {
	switch r.screen {
	case ScreenList:
		if r.narrow {
			return tr.T(i18n.MenuList)
		}
		return tr.T(i18n.TasksTitle)
	case ScreenAdd:
		return tr.T(i18n.TasksNew)
	case ScreenDetail:
		return tr.T(i18n.TasksTitle)
	case ScreenProfile:
		return tr.T(i18n.MenuProfile)
	case ScreenSettings:
		return tr.T(i18n.MenuSettings)
	case ScreenAbout:
		return tr.T(i18n.MenuAbout)
	}
	return tr.T(i18n.AppTitle)
}
