// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todolist/internal/store/textstore"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Default values.
const (
	DefaultTheme    = "classic"
	DefaultUI       = UILine
	DefaultLogLevel = "warn"
)

// Front-ends.
const (
	UILine = "line"
	UITUI  = "tui"
)

// Config holds everything the program can be tuned with. There are no
// command-line flags.
type Config struct {
	File     string `toml:"file"`
	Theme    string `toml:"theme"`
	UI       string `toml:"ui"`
	LogLevel string `toml:"log_level"`
	NoColor  bool   `toml:"no_color"`
}

// ProjectFiles are looked up in the working directory, first match wins.
var ProjectFiles = []string{"todo.toml", ".todo.toml"}

// Load builds the configuration in priority order:
// 1. Defaults
// 2. Project config file (todo.toml or .todo.toml in dir)
// 3. Environment variables
func Load(dir string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := &Config{}
	setDefaults(cfg)

	if path := findProjectConfigFile(dir); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg, getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.File = textstore.DefaultFileName
	cfg.Theme = DefaultTheme
	cfg.UI = DefaultUI
	cfg.LogLevel = DefaultLogLevel
}

func findProjectConfigFile(dir string) string {
	for _, name := range ProjectFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// loadFromEnv overrides config from environment variables. NO_COLOR is
// honoured as in https://no-color.org.
func loadFromEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv("TODO_FILE")); v != "" {
		cfg.File = v
	}
	if v := strings.TrimSpace(getenv("TODO_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(getenv("TODO_UI")); v != "" {
		cfg.UI = v
	}
	if v := strings.TrimSpace(getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(getenv("TODO_NO_COLOR")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	if getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
}

// Validate rejects values no front-end can use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("file must not be empty")
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if !slices.Contains(ui.ThemeNames(), c.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	c.UI = strings.ToLower(strings.TrimSpace(c.UI))
	switch c.UI {
	case UILine, UITUI:
	default:
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UILine, UITUI)
	}
	return nil
}
