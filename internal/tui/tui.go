// Package tui is the interactive terminal client: a task list, an add form,
// a detail/edit view and the profile, settings and about panels.
package tui

import (
	"io"
	"log/slog"
	"time"

	"taskdo/internal/api"
	"taskdo/internal/config"
	"taskdo/internal/mutate"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Service api.Service
	Config  *config.Config
	Logger  *slog.Logger
	Version string

	// Ticker schedules every timed transition (animations, flash messages).
	// Defaults to tea.Tick.
	Ticker mutate.Ticker
	// Now is the clock used for due-date colouring. Defaults to time.Now.
	Now func() time.Time
	// SaveConfig persists settings changes. Defaults to config.Save.
	SaveConfig func(*config.Config) error
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = &config.Config{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Ticker == nil {
		o.Ticker = tea.Tick
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.SaveConfig == nil {
		o.SaveConfig = config.Save
	}
	if o.Version == "" {
		o.Version = "dev"
	}
	return o
}

func Run(opts Options) error {
	opts = opts.withDefaults()
	applyColorProfilePreference()
	applyThemePreference(opts.Config.Theme())
	applyGlyphPreference(opts.Config.Glyphs())

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
