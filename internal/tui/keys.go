package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	New      key.Binding
	Toggle   key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Menu     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextFld  key.Binding
	PrevFld  key.Binding
	Save     key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
	MenuJump []key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "ctrl+p"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "ctrl+n"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	New: key.NewBinding(
		key.WithKeys("n", "a"),
		key.WithHelp("n", "new task"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "done/undo"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "enter", " "),
		key.WithHelp("→/l", "next"),
	),
	NextFld: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevFld: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQ: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
	MenuJump: []key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tasks")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "profile")),
		key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "settings")),
		key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "about")),
	},
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Open, k.Toggle, k.Menu, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.New, k.Toggle, k.Edit, k.Delete, k.Copy},
		{k.NextFld, k.PrevFld, k.Save},
		append([]key.Binding{k.Menu, k.Reload, k.Dismiss}, k.MenuJump...),
		{k.Help, k.Quit},
	}
}
