package tui

import (
	"strings"

	"taskdo/internal/config"
	"taskdo/internal/i18n"
	"taskdo/internal/router"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

func menuLabel(tr *i18n.Translator, s router.Screen) string {
	switch s {
	case router.ScreenProfile:
		return tr.T(i18n.MenuProfile)
	case router.ScreenSettings:
		return tr.T(i18n.MenuSettings)
	case router.ScreenAbout:
		return tr.T(i18n.MenuAbout)
	default:
		return tr.T(i18n.MenuList)
	}
}

// renderMenu draws the navigation entries. The entry for the active screen is
// marked; cursor is highlighted only while the menu has focus.
func renderMenu(tr *i18n.Translator, active router.Screen, cursor int, focused bool, width int) string {
	lines := make([]string, 0, len(router.MenuScreens)+2)
	lines = append(lines, styleHeader().Render(glyphMenu()+" "+tr.T(i18n.AppTitle)), "")
	for i, s := range router.MenuScreens {
		st := lipgloss.NewStyle()
		label := menuLabel(tr, s)
		current := s == active || (s == router.ScreenList && (active == router.ScreenDetail || active == router.ScreenAdd))
		if current {
			st = st.Bold(true).Foreground(colorAccent)
		}
		if focused && i == cursor {
			st = st.Background(colorSelectedBg).Foreground(colorSelectedFg)
		}
		prefix := "  "
		if focused && i == cursor {
			prefix = glyphCursor() + " "
		}
		lines = append(lines, st.Render(normalizePane(prefix+label, width-1, 1)))
	}
	return strings.Join(lines, "\n")
}

func renderProfile(tr *i18n.Translator) string {
	return tr.T(i18n.ProfileText)
}

func renderAbout(tr *i18n.Translator, version string) string {
	var b strings.Builder
	b.WriteString(styleHeader().Render(tr.T(i18n.AppTitle)))
	b.WriteString("\n\n")
	b.WriteString(tr.T(i18n.AboutText))
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render(tr.T(i18n.AboutVersion, version)))
	return b.String()
}

func themeLabel(tr *i18n.Translator, theme string) string {
	switch theme {
	case config.ThemeLight:
		return tr.T(i18n.ThemeLight)
	case config.ThemeDark:
		return tr.T(i18n.ThemeDark)
	default:
		return tr.T(i18n.ThemeAuto)
	}
}

// languageLabel names lang in its own language ("English", "magyar").
func languageLabel(lang string) string {
	tag := i18n.Match(lang)
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

func renderSettings(tr *i18n.Translator, cfg *config.Config, cursor settingsRow) string {
	lang := cfg.Language()
	if lang == "" {
		lang = tr.Lang()
	}
	rows := []struct {
		label string
		value string
	}{
		{tr.T(i18n.SettingsTheme), themeLabel(tr, cfg.Theme())},
		{tr.T(i18n.SettingsLang), languageLabel(lang)},
	}
	var b strings.Builder
	for i, r := range rows {
		prefix := "  "
		st := lipgloss.NewStyle()
		if settingsRow(i) == cursor {
			prefix = glyphCursor() + " "
			st = st.Bold(true)
		}
		b.WriteString(st.Render(prefix + r.label + ": "))
		b.WriteString(lipgloss.NewStyle().Foreground(colorAccent).Render("‹ " + r.value + " ›"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("←/→ " + tr.T(i18n.SettingsSelect)))
	return b.String()
}

// nextTheme cycles through auto, light, dark.
func nextTheme(cur string, step int) string {
	idx := 0
	for i, t := range themes {
		if t == cur {
			idx = i
		}
	}
	return themes[(idx+step+len(themes))%len(themes)]
}

// nextLanguage cycles through the supported UI languages.
func nextLanguage(cur string, step int) string {
	langs := config.Languages
	curTag := i18n.Match(cur)
	idx := 0
	for i, l := range langs {
		if language.Make(l) == curTag {
			idx = i
		}
	}
	return langs[(idx+step+len(langs))%len(langs)]
}
