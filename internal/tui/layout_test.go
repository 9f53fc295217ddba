package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestNormalizePane_PadsAndCuts(t *testing.T) {
	out := normalizePane("short\nthis line is far too long", 10, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 10 {
			t.Fatalf("line %d width %d: %q", i, w, ln)
		}
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected ellipsis, got %q", lines[1])
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := renderMarkdown("   ", 40); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := renderMarkdown("some **bold** text", 40); !strings.Contains(got, "bold") {
		t.Fatalf("expected rendered text, got %q", got)
	}
}

func TestNextThemeAndLanguageCycle(t *testing.T) {
	if got := nextTheme("auto", 1); got != "light" {
		t.Fatalf("nextTheme auto = %q", got)
	}
	if got := nextTheme("auto", -1); got != "dark" {
		t.Fatalf("previous theme of auto = %q", got)
	}
	if got := nextLanguage("hu", 1); got != "en" {
		t.Fatalf("nextLanguage hu = %q", got)
	}
	if got := languageLabel("hu"); got != "magyar" {
		t.Fatalf("languageLabel hu = %q", got)
	}
}
