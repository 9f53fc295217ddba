package tui

import (
	"strings"

	"taskdo/internal/i18n"
	"taskdo/internal/router"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	bw, bh := m.bodySize()

	var body string
	switch {
	case m.router.Narrow() && m.router.MenuOpen():
		body = normalizePane(renderMenu(m.tr, m.router.Screen(), m.menuCursor, true, m.width), m.width, bh)
	case m.router.MenuOpen():
		menu := normalizePane(renderMenu(m.tr, m.router.Screen(), m.menuCursor, m.menuFocus, menuWidth), menuWidth, bh)
		sep := normalizePane(strings.TrimRight(strings.Repeat("│\n", bh), "\n"), 1, bh)
		sep = lipgloss.NewStyle().Foreground(colorBorder).Render(sep)
		body = lipgloss.JoinHorizontal(lipgloss.Top, menu, sep, normalizePane(m.viewBody(bw), bw, bh))
	default:
		body = normalizePane(m.viewBody(bw), bw, bh)
	}

	parts := []string{m.viewHeader(), styleMuted().Render(strings.Repeat(glyphHRule(), m.width))}
	if err := m.coord.Err(); err != nil {
		banner := styleErrorBanner().Render(m.tr.T(i18n.TasksError)+": "+err.Error()) + " " + styleMuted().Render(m.tr.T(i18n.HelpDismiss))
		parts = append(parts, normalizePane(banner, m.width, 1))
	}
	parts = append(parts, body, m.viewStatus(), m.viewHelp())
	return strings.Join(parts, "\n")
}

func (m appModel) viewHeader() string {
	left := styleHeader().Render(glyphMenu()+" "+m.tr.T(i18n.AppTitle)) +
		lipgloss.NewStyle().Foreground(colorChromeFg).Render(" · "+m.router.Title(m.tr))
	if m.coord.Loading() || m.coord.Submitting() {
		left += " " + m.spinner.View()
	}
	return normalizePane(left, m.width, 1)
}

func (m appModel) viewBody(width int) string {
	switch m.router.Screen() {
	case router.ScreenList:
		if !m.store.Loaded() && m.coord.Loading() {
			return m.spinner.View() + " " + m.tr.T(i18n.TasksLoading)
		}
		if len(m.tasks.Items()) == 0 {
			if !m.store.Loaded() {
				return ""
			}
			return styleMuted().Render(m.tr.T(i18n.TasksEmpty))
		}
		return m.tasks.View()

	case router.ScreenAdd:
		return m.form.view(m.tr, m.tr.T(i18n.TasksAdd), m.coord.Submitting())

	case router.ScreenDetail:
		if m.editing {
			return m.form.view(m.tr, m.tr.T(i18n.TasksSave), false)
		}
		return m.detail.View()

	case router.ScreenProfile:
		return lipgloss.NewStyle().Width(width).Render(renderProfile(m.tr))

	case router.ScreenSettings:
		return renderSettings(m.tr, m.cfg, m.settingsCursor)

	case router.ScreenAbout:
		return lipgloss.NewStyle().Width(width).Render(renderAbout(m.tr, m.version))
	}
	return ""
}

func (m appModel) viewStatus() string {
	if m.minibufferText != "" {
		return normalizePane(m.minibufferText, m.width, 1)
	}
	if m.router.Screen() != router.ScreenList || !m.store.Loaded() {
		return normalizePane("", m.width, 1)
	}
	done := 0
	tasks := m.store.Tasks()
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return normalizePane(styleMuted().Render(m.tr.T(i18n.TasksCount, len(tasks), done)), m.width, 1)
}

func (m appModel) viewHelp() string {
	if m.help.ShowAll {
		return m.help.FullHelpView(keys.FullHelp())
	}
	return m.help.ShortHelpView(m.screenBindings())
}

func (m appModel) screenBindings() []key.Binding {
	var out []key.Binding
	if m.coord.Err() != nil {
		out = append(out, keys.Dismiss)
	}
	switch m.router.Screen() {
	case router.ScreenList:
		out = append(out, keys.New, keys.Open, keys.Toggle, keys.Delete, keys.Reload)
	case router.ScreenDetail:
		if m.editing {
			return append(out, keys.NextFld, keys.Save, keys.Back)
		}
		out = append(out, keys.Back, keys.Toggle, keys.Edit, keys.Delete, keys.Copy)
	case router.ScreenAdd:
		return append(out, keys.NextFld, keys.Save, keys.Back)
	case router.ScreenSettings:
		out = append(out, keys.Up, keys.Down, keys.Left, keys.Right)
	}
	return append(out, keys.Menu, keys.Help, keys.Quit)
}
