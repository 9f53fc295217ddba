package tui

import (
	"fmt"
	"strings"

	"taskdo/internal/model"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardDoneMsg struct {
	err error
}

// clipboardText is the plain-text form of a task copied from the detail view.
func clipboardText(t model.Task) string {
	var b strings.Builder
	b.WriteString(t.Title)
	if t.DueDate != nil && strings.TrimSpace(*t.DueDate) != "" {
		fmt.Fprintf(&b, " (due %s)", strings.TrimSpace(*t.DueDate))
	}
	if d := strings.TrimSpace(t.DescriptionText()); d != "" {
		b.WriteString("\n\n")
		b.WriteString(d)
	}
	return strings.ReplaceAll(b.String(), "\r\n", "\n")
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func copyTaskCmd(t model.Task) tea.Cmd {
	text := clipboardText(t)
	return func() tea.Msg {
		return clipboardDoneMsg{err: writeClipboard(text)}
	}
}
