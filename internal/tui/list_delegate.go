package tui

import (
	"fmt"
	"io"
	"strings"

	"taskdo/internal/model"
	"taskdo/internal/mutate"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// taskItem is one row of the task list. Markers and the due label are
// captured when the list is rebuilt from the store.
type taskItem struct {
	task     model.Task
	marker   mutate.Marker
	due      model.DueStatus
	dueLabel string
}

func (i taskItem) FilterValue() string { return i.task.Title }

func (i taskItem) Title() string { return i.task.Title }

type taskDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	added    lipgloss.Style
}

func newTaskDelegate() taskDelegate {
	return taskDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		added: lipgloss.NewStyle().Background(colorAddedBg),
	}
}

func (d taskDelegate) Height() int  { return 1 }
func (d taskDelegate) Spacing() int { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 8 {
		fmt.Fprint(w, "")
		return
	}
	it, ok := item.(taskItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = glyphCursor() + " "
	}

	title := it.task.Title
	titleStyle := lipgloss.NewStyle()
	if it.task.Completed {
		titleStyle = titleStyle.Strikethrough(true).Foreground(colorDoneFg)
	}

	prefix := cursor + glyphCheckbox(it.task.Completed) + " "
	var suffix string
	switch {
	case it.marker.Has(mutate.MarkDeleting):
		suffix = " " + glyphPending()
		titleStyle = faintIfDark(titleStyle.Foreground(colorMuted))
	case it.marker.Has(mutate.MarkToggling | mutate.MarkEditing):
		suffix = " " + glyphPending()
	case it.marker.Has(mutate.MarkAdded):
		suffix = " " + glyphAdded()
	}

	right := ""
	if it.dueLabel != "" {
		right = dueStyle(it.due).Render(it.dueLabel)
	}
	rightW := xansi.StringWidth(right)

	titleW := contentW - xansi.StringWidth(prefix) - xansi.StringWidth(suffix) - rightW - 1
	if titleW < 1 {
		right, rightW = "", 0
		titleW = contentW - xansi.StringWidth(prefix) - xansi.StringWidth(suffix)
	}
	if titleW < 1 {
		titleW = 1
	}
	if xansi.StringWidth(title) > titleW {
		title = truncateCols(title, titleW)
	}

	left := prefix + titleStyle.Render(title) + suffix
	gap := contentW - xansi.StringWidth(left) - rightW
	if gap < 0 {
		gap = 0
	}
	line := normalizePane(left+strings.Repeat(" ", gap)+right, contentW, 1)

	style := d.normal
	switch {
	case index == m.Index():
		style = d.selected
	case it.marker.Has(mutate.MarkAdded):
		style = d.added
	}
	fmt.Fprint(w, style.Render(line))
}

func newList(items []list.Item) list.Model {
	l := list.New(items, newTaskDelegate(), 0, 0)
	// We render our own header and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("task", "tasks")
	l.DisableQuitKeybindings()
	return l
}
