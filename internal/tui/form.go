package tui

import (
	"errors"
	"strings"

	"taskdo/internal/i18n"
	"taskdo/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDesc
	fieldDue
	fieldCount
)

// taskForm backs both the add screen and detail edit mode.
type taskForm struct {
	title textinput.Model
	desc  textarea.Model
	due   textinput.Model
	focus formField
	// err is a local validation failure; it never reaches the API.
	err string
}

func newTaskForm(tr *i18n.Translator) taskForm {
	title := textinput.New()
	title.Prompt = ""
	title.CharLimit = 200

	desc := textarea.New()
	desc.ShowLineNumbers = false
	desc.Prompt = ""
	desc.SetHeight(4)

	due := textinput.New()
	due.Prompt = ""
	due.CharLimit = len(model.DateLayout)

	f := taskForm{title: title, desc: desc, due: due}
	f.setLanguage(tr)
	return f
}

func (f *taskForm) setLanguage(tr *i18n.Translator) {
	f.title.Placeholder = tr.T(i18n.FormWhatToDo)
	f.desc.Placeholder = tr.T(i18n.FormAddDetails)
	f.due.Placeholder = tr.T(i18n.FormDateFormat)
}

func (f *taskForm) setWidth(w int) {
	if w < 10 {
		w = 10
	}
	f.title.Width = w
	f.desc.SetWidth(w)
	f.due.Width = w
}

// reset empties every field and focuses the title.
func (f *taskForm) reset() tea.Cmd {
	f.title.SetValue("")
	f.desc.SetValue("")
	f.due.SetValue("")
	f.err = ""
	return f.setFocus(fieldTitle)
}

// fill loads an existing task for editing.
func (f *taskForm) fill(t model.Task) tea.Cmd {
	f.title.SetValue(t.Title)
	f.desc.SetValue(t.DescriptionText())
	due := ""
	if t.DueDate != nil {
		due = strings.TrimSpace(*t.DueDate)
	}
	f.due.SetValue(due)
	f.err = ""
	return f.setFocus(fieldTitle)
}

func (f taskForm) draft() model.Draft {
	return model.Draft{
		Title:       f.title.Value(),
		Description: f.desc.Value(),
		DueDate:     f.due.Value(),
	}
}

func (f *taskForm) setFocus(ff formField) tea.Cmd {
	f.focus = ff
	f.title.Blur()
	f.desc.Blur()
	f.due.Blur()
	switch ff {
	case fieldDesc:
		return f.desc.Focus()
	case fieldDue:
		return f.due.Focus()
	default:
		return f.title.Focus()
	}
}

func (f *taskForm) next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *taskForm) prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *taskForm) blur() {
	f.title.Blur()
	f.desc.Blur()
	f.due.Blur()
}

// update forwards input to the focused field.
func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldDesc:
		f.desc, cmd = f.desc.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	default:
		f.title, cmd = f.title.Update(msg)
	}
	return cmd
}

// setError translates a validation error for display below the form.
func (f *taskForm) setError(tr *i18n.Translator, err error) {
	switch {
	case err == nil:
		f.err = ""
	case errors.Is(err, model.ErrEmptyTitle):
		f.err = tr.T(i18n.ErrEmptyTitle)
	case errors.Is(err, model.ErrInvalidDate):
		f.err = tr.T(i18n.ErrBadDate)
	default:
		f.err = err.Error()
	}
}

func (f taskForm) view(tr *i18n.Translator, submitLabel string, busy bool) string {
	label := func(s string, focused bool) string {
		st := lipgloss.NewStyle().Bold(true)
		if focused {
			st = st.Foreground(colorAccent)
		}
		return st.Render(s)
	}
	var b strings.Builder
	b.WriteString(label(tr.T(i18n.FormTitle), f.focus == fieldTitle) + "\n")
	b.WriteString(f.title.View() + "\n\n")
	b.WriteString(label(tr.T(i18n.FormDescOpt), f.focus == fieldDesc) + "\n")
	b.WriteString(f.desc.View() + "\n\n")
	b.WriteString(label(tr.T(i18n.FormDueDate), f.focus == fieldDue) + "\n")
	b.WriteString(f.due.View() + "\n\n")

	if f.err != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(colorDueOverdue).Render(f.err) + "\n\n")
	}

	submit := submitLabel
	if busy {
		submit = tr.T(i18n.TasksSaving)
	}
	button := lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg).Padding(0, 1)
	if busy {
		button = button.Faint(true)
	}
	b.WriteString(button.Render(submit) + "  " + styleMuted().Render("ctrl+s · esc "+tr.T(i18n.TasksCancel)))
	return b.String()
}
