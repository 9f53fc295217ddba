package tui

import (
	"os"
	"strconv"
	"strings"

	"taskdo/internal/config"
	"taskdo/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor everywhere and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorChromeFg   lipgloss.TerminalColor = ac("240", "245")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg   lipgloss.TerminalColor = ac("255", "235")
	colorBorder     lipgloss.TerminalColor = ac("250", "243")

	colorErrorBg lipgloss.TerminalColor = ac("196", "160")
	colorErrorFg lipgloss.TerminalColor = ac("255", "255")

	// Due date colours: overdue red, today yellow, future green.
	colorDueOverdue lipgloss.TerminalColor = ac("160", "203")
	colorDueToday   lipgloss.TerminalColor = ac("136", "221")
	colorDueFuture  lipgloss.TerminalColor = ac("28", "114")

	// Row highlight for a task that was just added.
	colorAddedBg lipgloss.TerminalColor = ac("#dcfce7", "#14532d")
	// Completed rows sit on a tinted surface.
	colorDoneFg lipgloss.TerminalColor = ac("245", "242")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleErrorBanner() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorErrorBg).Foreground(colorErrorFg).Bold(true).Padding(0, 1)
}

// dueStyle returns the foreground for a task's due label.
func dueStyle(s model.DueStatus) lipgloss.Style {
	switch s {
	case model.DueOverdue:
		return lipgloss.NewStyle().Foreground(colorDueOverdue).Bold(true)
	case model.DueToday:
		return lipgloss.NewStyle().Foreground(colorDueToday)
	case model.DueFuture:
		return lipgloss.NewStyle().Foreground(colorDueFuture)
	default:
		return styleMuted()
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful for
// non-interactive CLI output but can accidentally disable colors in a TUI. For the TUI,
// we only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports, trust the env.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) TASKDO_TUI_THEME=light|dark|auto
// 2) config theme (settings panel)
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference(theme string) {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("TASKDO_TUI_THEME"))); v != "" {
		theme = v
	}
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
		return
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}
	// Otherwise keep lipgloss's own terminal query result.
}
