package tui

import (
	"time"

	"taskdo/internal/config"
)

// narrowWidth is the terminal width below which the menu becomes an overlay.
const narrowWidth = 80

const (
	menuWidth       = 20
	maxContentW     = 96
	minibufferDelay = 2 * time.Second
)

// flashDoneMsg clears the minibuffer. Only the latest flash clears it.
type flashDoneMsg struct{ seq int }

// toggleCommitMsg fires once the detail checkbox animation reaches the point
// where the real toggle is dispatched.
type toggleCommitMsg struct{ seq int }

// toggleSettleMsg ends the detail checkbox animation.
type toggleSettleMsg struct{ seq int }

type configSavedMsg struct {
	err error
}

// detailToggle is the optimistic visual state of the detail checkbox while
// its animation plays.
type detailToggle struct {
	active    bool
	id        int64
	completed bool
	seq       int
}

type settingsRow int

const (
	settingsTheme settingsRow = iota
	settingsLanguage
	settingsRowCount
)

var themes = []string{config.ThemeAuto, config.ThemeLight, config.ThemeDark}
