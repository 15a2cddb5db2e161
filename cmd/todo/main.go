package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/session"
	"github.com/idilsaglam/todolist/internal/store/textstore"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 on exit or end of input, 1 when
// the config, the list file or the terminal fails.
func run() int {
	logger := logging.New(os.Stderr, config.DefaultLogLevel)

	// No flags: everything comes from todo.toml and the environment.
	cfg, err := config.Load("", nil)
	if err != nil {
		logger.Error("config", "err", err)
		return 1
	}
	logger = logging.New(os.Stderr, cfg.LogLevel)

	store, err := textstore.New(cfg.File)
	if err != nil {
		logger.Error("store", "err", err)
		return 1
	}
	logger.Debug("using list file", "path", store.Path(), "ui", cfg.UI, "theme", cfg.Theme)

	sess, err := session.New(store, logger)
	if err != nil {
		logger.Error("open list", "path", store.Path(), "err", err)
		return 1
	}

	p := ui.NewPrinter(os.Stdout, ui.Options{Theme: cfg.Theme, NoColor: cfg.NoColor})
	switch cfg.UI {
	case config.UITUI:
		err = tui.Run(sess, p, tea.WithAltScreen())
	default:
		err = cli.Run(sess, cli.Options{In: os.Stdin, Printer: p, Logger: logger})
	}
	if err != nil {
		logger.Error("session aborted", "err", err)
		return 1
	}
	return 0
}
