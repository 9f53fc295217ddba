package tui

import (
	"log/slog"
	"time"

	"taskdo/internal/config"
	"taskdo/internal/i18n"
	"taskdo/internal/model"
	"taskdo/internal/mutate"
	"taskdo/internal/router"
	"taskdo/internal/taskstore"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	coord  *mutate.Coordinator
	store  *taskstore.Store
	router *router.Router
	tr     *i18n.Translator
	cfg    *config.Config
	log    *slog.Logger

	tick       mutate.Ticker
	now        func() time.Time
	saveConfig func(*config.Config) error
	version    string

	width  int
	height int

	tasks   list.Model
	spinner spinner.Model
	detail  viewport.Model
	form    taskForm
	help    help.Model

	// editing is detail edit mode; the form holds the draft.
	editing bool
	toggle  detailToggle

	menuCursor int
	menuFocus  bool

	settingsCursor settingsRow

	flashSeq       int
	minibufferText string
}

func newAppModel(opts Options) appModel {
	opts = opts.withDefaults()
	lang := opts.Config.Language()
	if lang == "" {
		lang = i18n.Detect()
	}
	tr := i18n.New(lang)

	st := taskstore.New()
	r := router.New()
	coord := mutate.New(opts.Service, st, r,
		mutate.WithLogger(opts.Logger),
		mutate.WithTicker(opts.Ticker),
	)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := appModel{
		coord:      coord,
		store:      st,
		router:     r,
		tr:         tr,
		cfg:        opts.Config,
		log:        opts.Logger,
		tick:       opts.Ticker,
		now:        opts.Now,
		saveConfig: opts.SaveConfig,
		version:    opts.Version,
		tasks:      newList(nil),
		spinner:    sp,
		detail:     viewport.New(0, 0),
		form:       newTaskForm(tr),
		help:       help.New(),
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.coord.Load(), m.spinner.Tick)
}

// refreshTasks rebuilds the list rows from the store, keeping the cursor on
// the same task when it still exists.
func (m *appModel) refreshTasks() {
	var keep int64
	hadSel := false
	if it, ok := m.tasks.SelectedItem().(taskItem); ok {
		keep, hadSel = it.task.ID, true
	}

	now := m.now()
	markers := m.coord.Markers()
	tasks := m.store.Tasks()
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		label, due := dueLabel(m.tr, t, now)
		items = append(items, taskItem{task: t, marker: markers.Of(t.ID), due: due, dueLabel: label})
	}
	m.tasks.SetItems(items)

	if hadSel {
		m.selectTask(keep)
	}
	m.refreshDetail()
}

// selectTask moves the list cursor to id, if present.
func (m *appModel) selectTask(id int64) {
	for i, it := range m.tasks.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
			m.tasks.Select(i)
			return
		}
	}
}

func (m appModel) selectedTask() (model.Task, bool) {
	it, ok := m.tasks.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

// detailTask is the task shown on the detail screen.
func (m appModel) detailTask() (model.Task, bool) {
	id, ok := m.router.Selected()
	if !ok {
		return model.Task{}, false
	}
	return m.store.Get(id)
}

func (m *appModel) refreshDetail() {
	t, ok := m.detailTask()
	if !ok {
		m.detail.SetContent("")
		return
	}
	completed := t.Completed
	if m.toggle.active && m.toggle.id == t.ID {
		completed = m.toggle.completed
	}
	m.detail.SetContent(renderDetail(m.tr, t, completed, m.detail.Width, m.now()))
}

// bodySize is the area left for the active screen after the header, footer
// and (on wide terminals) the side menu.
func (m appModel) bodySize() (int, int) {
	w := m.width
	if !m.router.Narrow() && m.router.MenuOpen() {
		w -= menuWidth + 1
	}
	if w > maxContentW {
		w = maxContentW
	}
	h := m.height - 4
	if m.coord.Err() != nil {
		h--
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (m *appModel) resize() {
	w, h := m.bodySize()
	m.tasks.SetSize(w, h)
	m.detail.Width = w
	m.detail.Height = h
	m.form.setWidth(w - 2)
	m.help.Width = m.width
	m.refreshDetail()
}

// showMinibuffer flashes text in the footer until the next flash or the
// delay elapses.
func (m *appModel) showMinibuffer(text string) tea.Cmd {
	m.flashSeq++
	seq := m.flashSeq
	m.minibufferText = text
	return m.tick(minibufferDelay, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (m *appModel) setLanguage(lang string) {
	if lang == "" {
		lang = i18n.Detect()
	}
	m.tr = i18n.New(lang)
	m.form.setLanguage(m.tr)
	m.refreshTasks()
}
