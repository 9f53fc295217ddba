package i18n

// Message keys.
const (
	AppTitle       = "app.title"
	MenuHome       = "menu.home"
	MenuList       = "menu.list"
	MenuProfile    = "menu.profile"
	MenuSettings   = "menu.settings"
	MenuAbout      = "menu.about"
	MenuOpen       = "menu.open"
	MenuCollapse   = "menu.collapse"
	MenuExpand     = "menu.expand"
	TasksTitle     = "tasks.title"
	TasksNew       = "tasks.newTask"
	TasksAdd       = "tasks.addTask"
	TasksLoading   = "tasks.loading"
	TasksError     = "tasks.error"
	TasksEmpty     = "tasklist.noTask"
	TasksBack      = "tasks.back"
	TasksEdit      = "tasks.edit"
	TasksSave      = "tasks.save"
	TasksSaving    = "tasks.saving"
	TasksCancel    = "tasks.cancel"
	TasksDelete    = "tasks.delete"
	TasksComplete  = "tasks.markComplete"
	TasksPending   = "tasks.markPending"
	TasksNoDesc    = "tasks.noDescription"
	TasksCopied    = "tasks.copied"
	TasksCount     = "tasks.count"
	FormTitle      = "form.title"
	FormWhatToDo   = "form.whatToDo"
	FormDesc       = "form.description"
	FormDescOpt    = "form.descriptionOptional"
	FormDueDate    = "form.dueDate"
	FormDateFormat = "form.dateFormat"
	FormAddDetails = "form.addDetails"
	ErrEmptyTitle  = "errors.emptyTitle"
	ErrBadDate     = "errors.badDate"
	ErrSaveFailed  = "errors.saveFailed"
	ErrEditFailed  = "errors.editFailed"
	ProfileText    = "profile.placeholderText"
	SettingsTheme  = "settings.theme"
	SettingsLang   = "settings.language"
	SettingsSelect = "settings.selectLanguage"
	SettingsSaved  = "settings.saved"
	ThemeAuto      = "settings.themeAuto"
	ThemeLight     = "settings.themeLight"
	ThemeDark      = "settings.themeDark"
	AboutText      = "about.mainText"
	AboutVersion   = "about.version"
	DueOverdue     = "due.overdue"
	DueToday       = "due.today"
	DueOn          = "due.on"
	HelpDismiss    = "help.dismiss"
)

var english = map[string]string{
	AppTitle:       "TaskFlow",
	MenuHome:       "Home",
	MenuList:       "Tasks",
	MenuProfile:    "Profile",
	MenuSettings:   "Settings",
	MenuAbout:      "About",
	MenuOpen:       "Open menu",
	MenuCollapse:   "Collapse menu",
	MenuExpand:     "Expand menu",
	TasksTitle:     "My tasks",
	TasksNew:       "New task",
	TasksAdd:       "Add task",
	TasksLoading:   "Loading tasks…",
	TasksError:     "Error",
	TasksEmpty:     "No tasks yet. Press n to add one.",
	TasksBack:      "Back",
	TasksEdit:      "Edit",
	TasksSave:      "Save",
	TasksSaving:    "Saving…",
	TasksCancel:    "Cancel",
	TasksDelete:    "Delete",
	TasksComplete:  "Mark complete",
	TasksPending:   "Mark pending",
	TasksNoDesc:    "No description",
	TasksCopied:    "Copied to clipboard",
	TasksCount:     "%d tasks, %d done",
	FormTitle:      "Title",
	FormWhatToDo:   "What needs to be done?",
	FormDesc:       "Description",
	FormDescOpt:    "Description (optional)",
	FormDueDate:    "Due date",
	FormDateFormat: "YYYY-MM-DD",
	FormAddDetails: "Add details",
	ErrEmptyTitle:  "Title cannot be empty.",
	ErrBadDate:     "Due date must be YYYY-MM-DD.",
	ErrSaveFailed:  "Failed to save task.",
	ErrEditFailed:  "Failed to edit task.",
	ProfileText:    "Profile settings are coming soon.",
	SettingsTheme:  "Theme",
	SettingsLang:   "Language",
	SettingsSelect: "Select language",
	SettingsSaved:  "Settings saved",
	ThemeAuto:      "Auto",
	ThemeLight:     "Light",
	ThemeDark:      "Dark",
	AboutText:      "TaskFlow is a simple task manager to keep your day on track.",
	AboutVersion:   "Version %s",
	DueOverdue:     "Overdue: %s",
	DueToday:       "Due today",
	DueOn:          "Due %s",
	HelpDismiss:    "esc to dismiss",
}

var hungarian = map[string]string{
	AppTitle:       "TaskFlow",
	MenuHome:       "Kezdőlap",
	MenuList:       "Feladatok",
	MenuProfile:    "Profil",
	MenuSettings:   "Beállítások",
	MenuAbout:      "Névjegy",
	MenuOpen:       "Menü megnyitása",
	MenuCollapse:   "Menü összecsukása",
	MenuExpand:     "Menü kibontása",
	TasksTitle:     "Feladataim",
	TasksNew:       "Új feladat",
	TasksAdd:       "Feladat hozzáadása",
	TasksLoading:   "Feladatok betöltése…",
	TasksError:     "Hiba",
	TasksEmpty:     "Még nincs feladat. Nyomd meg az n-t egy újhoz.",
	TasksBack:      "Vissza",
	TasksEdit:      "Szerkesztés",
	TasksSave:      "Mentés",
	TasksSaving:    "Mentés…",
	TasksCancel:    "Mégse",
	TasksDelete:    "Törlés",
	TasksComplete:  "Késznek jelöl",
	TasksPending:   "Függőben",
	TasksNoDesc:    "Nincs leírás",
	TasksCopied:    "Vágólapra másolva",
	TasksCount:     "%d feladat, %d kész",
	FormTitle:      "Cím",
	FormWhatToDo:   "Mit kell elvégezni?",
	FormDesc:       "Leírás",
	FormDescOpt:    "Leírás (nem kötelező)",
	FormDueDate:    "Határidő",
	FormDateFormat: "ÉÉÉÉ-HH-NN",
	FormAddDetails: "Részletek hozzáadása",
	ErrEmptyTitle:  "A cím nem lehet üres.",
	ErrBadDate:     "A határidő formátuma ÉÉÉÉ-HH-NN.",
	ErrSaveFailed:  "A feladat mentése sikertelen.",
	ErrEditFailed:  "A feladat szerkesztése sikertelen.",
	ProfileText:    "A profilbeállítások hamarosan érkeznek.",
	SettingsTheme:  "Téma",
	SettingsLang:   "Nyelv",
	SettingsSelect: "Nyelv kiválasztása",
	SettingsSaved:  "Beállítások mentve",
	ThemeAuto:      "Automatikus",
	ThemeLight:     "Világos",
	ThemeDark:      "Sötét",
	AboutText:      "A TaskFlow egy egyszerű feladatkezelő, hogy a napod kézben maradjon.",
	AboutVersion:   "Verzió: %s",
	DueOverdue:     "Lejárt: %s",
	DueToday:       "Ma esedékes",
	DueOn:          "Határidő: %s",
	HelpDismiss:    "esc a bezáráshoz",
}
