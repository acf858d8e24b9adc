package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"taskloom/internal/app"
	"taskloom/internal/config"
	"taskloom/internal/store"
	"taskloom/internal/tasks"
)

func main() {
	// A TUI cannot log to stdout; route debug logging to a file instead.
	if os.Getenv("TASKLOOM_DEBUG") != "" {
		f, err := tea.LogToFile("taskloom-debug.log", "taskloom")
		if err != nil {
			log.Fatalf("opening debug log: %v", err)
		}
		defer f.Close()
	}

	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		log.Fatalf("creating data directory: %v", err)
	}

	storage, err := store.NewSQLiteStorage(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("opening storage: %v", err)
	}
	defer storage.Close()

	list, err := tasks.NewList(storage)
	if err != nil {
		log.Fatalf("loading tasks: %v", err)
	}

	p := tea.NewProgram(
		app.New(list, cfg.Display.DateFormat),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatalf("running program: %v", err)
	}
}
