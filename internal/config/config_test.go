package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idilsaglam/todolist/internal/store/textstore"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir(), env(nil))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := &Config{File: textstore.DefaultFileName, Theme: DefaultTheme, UI: UILine, LogLevel: DefaultLogLevel}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := "file = \"work.txt\"\ntheme = \"neon\"\nui = \"TUI\"\nlog_level = \"debug\"\nno_color = true\n"
	if err := os.WriteFile(filepath.Join(dir, ".todo.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir, env(nil))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := &Config{File: "work.txt", Theme: "neon", UI: UITUI, LogLevel: "debug", NoColor: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "todo.toml"), []byte("file = \"a.txt\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir, env(map[string]string{
		"TODO_FILE":     "b.txt",
		"TODO_THEME":    " Mono ",
		"TODO_NO_COLOR": "not-a-bool",
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.File != "b.txt" {
		t.Errorf("expected env file, got %s", cfg.File)
	}
	if cfg.Theme != "mono" {
		t.Errorf("expected mono theme, got %s", cfg.Theme)
	}
	if cfg.NoColor {
		t.Error("unparsable TODO_NO_COLOR must be ignored")
	}

	cfg, err = Load(dir, env(map[string]string{"NO_COLOR": "1"}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !cfg.NoColor {
		t.Error("NO_COLOR must disable colour")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad toml", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "todo.toml"), []byte("file = "), 0o644)
		_, err := Load(dir, env(nil))
		if err == nil || !strings.Contains(err.Error(), "loading project config file") {
			t.Errorf("expected config file error, got %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "todo.toml"), []byte("colour = \"red\"\n"), 0o644)
		_, err := Load(dir, env(nil))
		if err == nil || !strings.Contains(err.Error(), "unknown keys: colour") {
			t.Errorf("expected unknown key error, got %v", err)
		}
	})

	t.Run("unknown ui", func(t *testing.T) {
		_, err := Load(t.TempDir(), env(map[string]string{"TODO_UI": "web"}))
		if err == nil || !strings.Contains(err.Error(), "unknown ui") {
			t.Errorf("expected ui error, got %v", err)
		}
	})

	t.Run("unknown theme", func(t *testing.T) {
		_, err := Load(t.TempDir(), env(map[string]string{"TODO_THEME": "solarized"}))
		if err == nil || !strings.Contains(err.Error(), `unknown theme "solarized"`) {
			t.Errorf("expected theme error, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "todo.toml"), []byte("file = \"  \"\n"), 0o644)
		_, err := Load(dir, env(nil))
		if err == nil || !strings.Contains(err.Error(), "file must not be empty") {
			t.Errorf("expected empty file error, got %v", err)
		}
	})
}
