package tui

import (
	"strings"
	"time"

	"taskdo/internal/i18n"
	"taskdo/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// dueLabel is the human text for a task's due date, or "" when it has none.
func dueLabel(tr *i18n.Translator, t model.Task, now time.Time) (string, model.DueStatus) {
	st := model.DueStatusOf(t, now)
	switch st {
	case model.DueOverdue:
		return tr.T(i18n.DueOverdue, strings.TrimSpace(*t.DueDate)), st
	case model.DueToday:
		return tr.T(i18n.DueToday), st
	case model.DueFuture:
		return tr.T(i18n.DueOn, strings.TrimSpace(*t.DueDate)), st
	}
	return "", st
}

// renderDetail renders the read-only detail body. completed is the value
// shown on the checkbox, which leads the store while the toggle animation
// plays.
func renderDetail(tr *i18n.Translator, t model.Task, completed bool, width int, now time.Time) string {
	if width < 10 {
		width = 10
	}
	var b strings.Builder

	check := glyphCheckbox(completed) + " "
	if completed {
		check += tr.T(i18n.TasksPending)
	} else {
		check += tr.T(i18n.TasksComplete)
	}
	title := lipgloss.NewStyle().Bold(true).Width(width)
	if completed {
		title = title.Strikethrough(true).Foreground(colorDoneFg)
	}
	b.WriteString(title.Render(t.Title))
	b.WriteString("\n")
	if label, st := dueLabel(tr, t, now); label != "" {
		b.WriteString(dueStyle(st).Render(label))
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render(check))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(strings.Repeat(glyphHRule(), width)))
	b.WriteString("\n\n")

	if desc := renderMarkdown(t.DescriptionText(), width); desc != "" {
		b.WriteString(desc)
	} else {
		b.WriteString(styleMuted().Italic(true).Render(tr.T(i18n.TasksNoDesc)))
	}
	return b.String()
}
