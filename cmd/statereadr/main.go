package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"statereadr/internal/config"
	"statereadr/internal/fetch"
	"statereadr/internal/session"
	"statereadr/internal/tui"
	"statereadr/pkg/logger"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath(), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
		if err := config.Save(cfg, *configPath); err != nil {
			fatal("writing default config", err)
		}
	} else if err != nil {
		fatal("loading config", err)
	}

	if err := logger.Init(cfg.Log.Path); err != nil {
		fatal("initializing logger", err)
	}

	store, err := session.Open(cfg.Session.Path)
	if err != nil {
		fatal("opening session store", err)
	}
	defer store.Close()

	orch := fetch.New(cfg.API, store)

	p := tea.NewProgram(tui.New(cfg, orch), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal("running program", err)
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "statereadr: %s: %v\n", msg, err)
	os.Exit(1)
}
