// Package i18n holds the UI message catalogs (English and Hungarian).
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.English, language.Hungarian}

var matcher = language.NewMatcher(supported)

var cat = build()

func build() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		_ = b.SetString(language.English, key, msg)
	}
	for key, msg := range hungarian {
		_ = b.SetString(language.Hungarian, key, msg)
	}
	return b
}

// Translator formats UI messages in one language.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a translator for lang (e.g. "hu", "hu_HU.UTF-8"). Empty or
// unsupported languages fall back to English.
func New(lang string) *Translator {
	tag := Match(lang)
	return &Translator{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Match maps a language name to the closest supported tag.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "_", "-")
	if lang == "" || lang == "C" || lang == "POSIX" {
		return language.English
	}
	t, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Detect picks the UI language from the environment.
func Detect() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return Match(v).String()
		}
	}
	return language.English.String()
}

func (t *Translator) Lang() string { return t.tag.String() }

// T returns the message for key, formatted with args.
func (t *Translator) T(key string, args ...any) string {
	return t.p.Sprintf(key, args...)
}
