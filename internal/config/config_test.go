package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("TASKDO_CONFIG_DIR", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "" || cfg.Theme() != ThemeAuto {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestSaveLoad_RoundTripAndPermissions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKDO_CONFIG_DIR", dir)

	cfg := &Config{}
	if err := cfg.Set(KeyAPIURL, "http://tasks.local:9000/"); err != nil {
		t.Fatalf("set api-url: %v", err)
	}
	if err := cfg.Set(KeyTheme, ThemeDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if err := cfg.Set(KeyLanguage, "hu"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.APIURL != "http://tasks.local:9000" || got.Theme() != ThemeDark || got.Language() != "hu" {
		t.Fatalf("unexpected config: %#v / %#v", got, got.TUI)
	}

	st, err := os.Stat(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600, got %v", st.Mode().Perm())
	}
	left, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(left) != 0 {
		t.Fatalf("temp files left behind: %v", left)
	}
}

func TestSet_RejectsBadValues(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set(KeyTheme, "sepia"); err == nil {
		t.Fatalf("expected theme error")
	}
	if err := cfg.Set(KeyLanguage, "de"); err == nil {
		t.Fatalf("expected language error")
	}
	if err := cfg.Set("colour", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestSave_ConcurrentWritersDoNotCorrupt(t *testing.T) {
	t.Setenv("TASKDO_CONFIG_DIR", t.TempDir())

	var wg sync.WaitGroup
	errCh := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg := &Config{}
			theme := ThemeLight
			if i%2 == 0 {
				theme = ThemeDark
			}
			_ = cfg.Set(KeyTheme, theme)
			if err := Save(cfg); err != nil {
				errCh <- err
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("concurrent Save: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("config corrupted: %v", err)
	}
	if th := cfg.Theme(); th != ThemeLight && th != ThemeDark {
		t.Fatalf("unexpected theme %q", th)
	}
}

func TestResolveAPIURL_Precedence(t *testing.T) {
	cfg := &Config{APIURL: "http://from-file"}

	t.Setenv("TASKDO_API_URL", "")
	t.Setenv("VITE_API_URL", "")
	if got := ResolveAPIURL("", nil); got != "http://localhost:8000" {
		t.Fatalf("default: got %q", got)
	}
	if got := ResolveAPIURL("", cfg); got != "http://from-file" {
		t.Fatalf("file: got %q", got)
	}

	t.Setenv("VITE_API_URL", "http://from-vite")
	if got := ResolveAPIURL("", cfg); got != "http://from-vite" {
		t.Fatalf("legacy env: got %q", got)
	}

	t.Setenv("TASKDO_API_URL", "http://from-env")
	if got := ResolveAPIURL("", cfg); got != "http://from-env" {
		t.Fatalf("env: got %q", got)
	}

	if got := ResolveAPIURL("http://from-flag", cfg); got != "http://from-flag" {
		t.Fatalf("flag: got %q", got)
	}
}
