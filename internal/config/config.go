// Package config reads and writes the user configuration in
// ~/.taskdo/config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"taskdo/internal/api"
)

type Config struct {
	// APIURL is the base URL of the task API.
	APIURL string `json:"apiUrl,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is one of: auto|light|dark.
	Theme string `json:"theme,omitempty"`
	// Language is a BCP 47 tag (en, hu).
	Language string `json:"language,omitempty"`
	// Glyphs selects the glyph set (unicode|ascii).
	Glyphs string `json:"glyphs,omitempty"`
}

const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Keys settable with `taskdo config set`.
const (
	KeyAPIURL   = "api-url"
	KeyTheme    = "theme"
	KeyLanguage = "language"
	KeyGlyphs   = "glyphs"
)

var ErrUnknownKey = errors.New("unknown config key")

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.taskdo).
	if v := strings.TrimSpace(os.Getenv("TASKDO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdo"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load returns the stored config, or an empty one when the file is missing.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// Save writes cfg through a temp file + rename so concurrent CLI and TUI
// writers never leave a torn file.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

func (c *Config) tui() *TUIConfig {
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	return c.TUI
}

// Theme returns the configured theme, defaulting to auto.
func (c *Config) Theme() string {
	if c == nil || c.TUI == nil || strings.TrimSpace(c.TUI.Theme) == "" {
		return ThemeAuto
	}
	return c.TUI.Theme
}

func (c *Config) Language() string {
	if c == nil || c.TUI == nil {
		return ""
	}
	return strings.TrimSpace(c.TUI.Language)
}

func (c *Config) Glyphs() string {
	if c == nil || c.TUI == nil {
		return ""
	}
	return strings.TrimSpace(c.TUI.Glyphs)
}

// Set assigns a value by its CLI key, validating enumerated values.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case KeyAPIURL:
		c.APIURL = strings.TrimRight(value, "/")
	case KeyTheme:
		switch value {
		case ThemeAuto, ThemeLight, ThemeDark:
		default:
			return fmt.Errorf("theme must be one of auto, light, dark (got %q)", value)
		}
		c.tui().Theme = value
	case KeyLanguage:
		if value != "" && !SupportedLanguage(value) {
			return fmt.Errorf("language must be one of %s (got %q)", strings.Join(Languages, ", "), value)
		}
		c.tui().Language = value
	case KeyGlyphs:
		switch value {
		case "", "unicode", "ascii":
		default:
			return fmt.Errorf("glyphs must be unicode or ascii (got %q)", value)
		}
		c.tui().Glyphs = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Values returns the settable keys with their effective values.
func (c *Config) Values() map[string]string {
	return map[string]string{
		KeyAPIURL:   c.APIURL,
		KeyTheme:    c.Theme(),
		KeyLanguage: c.Language(),
		KeyGlyphs:   c.Glyphs(),
	}
}

func Keys() []string {
	keys := []string{KeyAPIURL, KeyTheme, KeyLanguage, KeyGlyphs}
	sort.Strings(keys)
	return keys
}

// Languages lists the UI languages that ship with a catalog.
var Languages = []string{"en", "hu"}

func SupportedLanguage(tag string) bool {
	for _, l := range Languages {
		if l == tag {
			return true
		}
	}
	return false
}

// ResolveAPIURL applies the precedence flag > TASKDO_API_URL > VITE_API_URL >
// config file > default.
func ResolveAPIURL(flag string, cfg *Config) string {
	if v := strings.TrimSpace(flag); v != "" {
		return v
	}
	for _, env := range []string{"TASKDO_API_URL", "VITE_API_URL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	if cfg != nil && strings.TrimSpace(cfg.APIURL) != "" {
		return strings.TrimSpace(cfg.APIURL)
	}
	return api.DefaultBaseURL
}
