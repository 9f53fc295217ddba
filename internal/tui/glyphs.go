package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't change the user's actual font. Instead, we can choose
// between Unicode and ASCII glyph sets for UI affordances (checkboxes, markers,
// separators).

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference reads TASKDO_TUI_GLYPHS, falling back to the config value.
func applyGlyphPreference(cfgValue string) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("TASKDO_TUI_GLYPHS")))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(cfgValue))
	}
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphCheckbox(done bool) string {
	if glyphs() == glyphSetASCII {
		if done {
			return "[x]"
		}
		return "[ ]"
	}
	if done {
		return "☑"
	}
	return "☐"
}

func glyphPending() string {
	if glyphs() == glyphSetASCII {
		return "~"
	}
	return "…"
}

func glyphAdded() string {
	if glyphs() == glyphSetASCII {
		return "+"
	}
	return "✚"
}

func glyphCursor() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}

func glyphMenu() string {
	if glyphs() == glyphSetASCII {
		return "="
	}
	return "☰"
}
