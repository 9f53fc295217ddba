package tui

import (
	"time"

	"taskdo/internal/config"
	"taskdo/internal/i18n"
	"taskdo/internal/mutate"
	"taskdo/internal/router"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, cmd := m.coord.Update(msg); res.Handled {
		m.afterMutation(res)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		narrow := msg.Width < narrowWidth
		if narrow != m.router.Narrow() {
			m.router.SetNarrow(narrow)
			// Crossing the breakpoint starts with the menu closed.
			m.router.CloseMenu()
			m.menuFocus = false
		}
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.coord.Loading() && !m.coord.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.minibufferText = ""
		}
		return m, nil

	case toggleCommitMsg:
		if !m.toggle.active || msg.seq != m.toggle.seq {
			return m, nil
		}
		cmd := m.coord.Toggle(m.toggle.id, m.toggle.completed)
		m.refreshTasks()
		seq := msg.seq
		return m, tea.Batch(cmd, m.tick(mutate.ToggleSettle, func(time.Time) tea.Msg {
			return toggleSettleMsg{seq: seq}
		}))

	case toggleSettleMsg:
		if msg.seq == m.toggle.seq {
			m.toggle.active = false
			m.refreshDetail()
		}
		return m, nil

	case clipboardDoneMsg:
		if msg.err != nil {
			m.log.Debug("clipboard write failed", "error", msg.err)
			return m, m.showMinibuffer(msg.err.Error())
		}
		return m, m.showMinibuffer(m.tr.T(i18n.TasksCopied))

	case configSavedMsg:
		if msg.err != nil {
			m.log.Debug("save config failed", "error", msg.err)
			return m, m.showMinibuffer(msg.err.Error())
		}
		return m, m.showMinibuffer(m.tr.T(i18n.SettingsSaved))

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

// afterMutation re-renders from the store once the coordinator has applied
// a message.
func (m *appModel) afterMutation(res mutate.Result) {
	m.refreshTasks()
	if res.Completed == mutate.OpAdd && res.Err == nil {
		m.form.reset()
		m.form.blur()
		m.selectTask(res.TaskID)
	}
	m.resize()
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.ForceQ) {
		return m, tea.Quit
	}

	// Text entry takes every key before the global shortcuts.
	switch {
	case m.router.Screen() == router.ScreenAdd:
		return m.updateAddKey(msg)
	case m.router.Screen() == router.ScreenDetail && m.editing:
		return m.updateEditKey(msg)
	case m.router.Screen() == router.ScreenList && m.tasks.FilterState() == list.Filtering:
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		return m, cmd
	}

	if m.menuFocus || (m.router.Narrow() && m.router.MenuOpen()) {
		return m.updateMenuKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Dismiss) && m.coord.Err() != nil:
		m.coord.DismissError()
		m.resize()
		return m, nil
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Menu):
		m.openMenu()
		return m, nil
	case key.Matches(msg, keys.Reload):
		cmd := m.coord.Load()
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	for i, b := range keys.MenuJump {
		if key.Matches(msg, b) {
			m.gotoMenu(router.MenuScreens[i])
			return m, nil
		}
	}

	switch m.router.Screen() {
	case router.ScreenList:
		return m.updateListKey(msg)
	case router.ScreenDetail:
		return m.updateDetailKey(msg)
	case router.ScreenSettings:
		return m.updateSettingsKey(msg)
	}
	return m, nil
}

// openMenu toggles the menu. Opening it gives it keyboard focus with the
// cursor on the current screen.
func (m *appModel) openMenu() {
	m.router.ToggleMenu()
	m.menuFocus = m.router.MenuOpen()
	m.menuCursor = 0
	for i, s := range router.MenuScreens {
		if s == m.router.Screen() {
			m.menuCursor = i
		}
	}
	m.resize()
}

func (m *appModel) gotoMenu(s router.Screen) {
	if !m.router.SelectMenu(s) {
		return
	}
	m.editing = false
	m.menuFocus = false
	m.form.blur()
	m.resize()
}

func (m appModel) updateMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.menuCursor < len(router.MenuScreens)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, keys.Open):
		m.gotoMenu(router.MenuScreens[m.menuCursor])
	case key.Matches(msg, keys.Menu):
		m.router.CloseMenu()
		m.menuFocus = false
		m.resize()
	case key.Matches(msg, keys.Back):
		if m.router.Narrow() {
			m.router.CloseMenu()
			m.resize()
		}
		m.menuFocus = false
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	default:
		for i, b := range keys.MenuJump {
			if key.Matches(msg, b) {
				m.gotoMenu(router.MenuScreens[i])
			}
		}
	}
	return m, nil
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Open):
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.router.Select(t.ID)
		m.editing = false
		m.detail.GotoTop()
		m.refreshDetail()
		return m, nil

	case key.Matches(msg, keys.New):
		m.router.NewTask()
		cmd := m.form.reset()
		m.resize()
		return m, cmd

	case key.Matches(msg, keys.Toggle):
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		cmd := m.coord.Toggle(t.ID, !t.Completed)
		m.refreshTasks()
		return m, cmd

	case key.Matches(msg, keys.Delete):
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		cmd := m.coord.Delete(t.ID)
		m.refreshTasks()
		return m, cmd
	}

	var cmd tea.Cmd
	m.tasks, cmd = m.tasks.Update(msg)
	return m, cmd
}

func (m appModel) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t, ok := m.detailTask()
	if !ok {
		m.router.CloseDetail()
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.Back):
		m.router.CloseDetail()
		m.refreshDetail()
		return m, nil

	case key.Matches(msg, keys.Toggle):
		return m, m.startDetailToggle(t.ID, !t.Completed)

	case key.Matches(msg, keys.Edit):
		m.editing = true
		cmd := m.form.fill(t)
		m.resize()
		return m, cmd

	case key.Matches(msg, keys.Delete):
		cmd := m.coord.Delete(t.ID)
		m.refreshTasks()
		return m, cmd

	case key.Matches(msg, keys.Copy):
		return m, copyTaskCmd(t)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// startDetailToggle flips the detail checkbox at once and dispatches the real
// toggle when the animation reaches its commit point.
func (m *appModel) startDetailToggle(id int64, completed bool) tea.Cmd {
	if m.toggle.active {
		return nil
	}
	m.toggle.seq++
	m.toggle.active = true
	m.toggle.id = id
	m.toggle.completed = completed
	m.refreshDetail()
	seq := m.toggle.seq
	return m.tick(mutate.ToggleAnimation-mutate.ToggleSettle, func(time.Time) tea.Msg {
		return toggleCommitMsg{seq: seq}
	})
}

func (m appModel) updateEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Dismiss):
		m.editing = false
		m.form.blur()
		m.form.err = ""
		m.refreshDetail()
		return m, nil
	case key.Matches(msg, keys.NextFld):
		return m, m.form.next()
	case key.Matches(msg, keys.PrevFld):
		return m, m.form.prev()
	case key.Matches(msg, keys.Save) || (msg.Type == tea.KeyEnter && m.form.focus != fieldDesc):
		id, ok := m.router.Selected()
		if !ok {
			return m, nil
		}
		cmd, err := m.coord.Edit(id, m.form.draft())
		if err != nil {
			m.form.setError(m.tr, err)
			return m, nil
		}
		if cmd == nil {
			return m, nil
		}
		m.editing = false
		m.form.err = ""
		m.form.blur()
		m.refreshTasks()
		return m, cmd
	}
	return m, m.form.update(msg)
}

func (m appModel) updateAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Dismiss) {
		if m.coord.Err() != nil {
			m.coord.DismissError()
			m.resize()
			return m, nil
		}
		m.router.CancelAdd()
		m.form.blur()
		m.form.err = ""
		m.resize()
		return m, nil
	}
	// The form is disabled while the create call is in flight.
	if m.coord.Submitting() {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.NextFld):
		return m, m.form.next()
	case key.Matches(msg, keys.PrevFld):
		return m, m.form.prev()
	case key.Matches(msg, keys.Save) || (msg.Type == tea.KeyEnter && m.form.focus != fieldDesc):
		cmd, err := m.coord.Add(m.form.draft())
		if err != nil {
			m.form.setError(m.tr, err)
			return m, nil
		}
		m.form.err = ""
		if cmd == nil {
			return m, nil
		}
		m.resize()
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	return m, m.form.update(msg)
}

func (m appModel) updateSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := 0
	switch {
	case key.Matches(msg, keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if m.settingsCursor < settingsRowCount-1 {
			m.settingsCursor++
		}
		return m, nil
	case key.Matches(msg, keys.Left):
		step = -1
	case key.Matches(msg, keys.Right):
		step = 1
	default:
		return m, nil
	}

	switch m.settingsCursor {
	case settingsTheme:
		theme := nextTheme(m.cfg.Theme(), step)
		if err := m.cfg.Set(config.KeyTheme, theme); err != nil {
			return m, m.showMinibuffer(err.Error())
		}
		applyThemePreference(theme)
		m.refreshTasks()
	case settingsLanguage:
		cur := m.cfg.Language()
		if cur == "" {
			cur = m.tr.Lang()
		}
		lang := nextLanguage(cur, step)
		if err := m.cfg.Set(config.KeyLanguage, lang); err != nil {
			return m, m.showMinibuffer(err.Error())
		}
		m.setLanguage(lang)
	}
	return m, m.saveConfigCmd()
}

// saveConfigCmd writes a copy of the config off the update loop.
func (m appModel) saveConfigCmd() tea.Cmd {
	cfg := *m.cfg
	if cfg.TUI != nil {
		tui := *cfg.TUI
		cfg.TUI = &tui
	}
	save := m.saveConfig
	return func() tea.Msg {
		return configSavedMsg{err: save(&cfg)}
	}
}
