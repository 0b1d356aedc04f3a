package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/cardfelt/cardfelt/internal/randutil"
	"github.com/cardfelt/cardfelt/internal/rules"
	"github.com/cardfelt/cardfelt/internal/tui"
)

type PlayCmd struct {
	Rules string `help:"Path to an HCL rules file defining the game variants" type:"path"`
	Seed  int64  `help:"RNG seed for reproducible shuffles (0 for random)" default:"0"`
	Debug string `help:"Write a debug log to this file" type:"path"`
}

func (c *PlayCmd) Run() error {
	logger := log.New(os.Stderr)
	logger.SetLevel(log.FatalLevel)
	if c.Debug != "" {
		f, err := os.OpenFile(c.Debug, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetLevel(log.DebugLevel)
	}

	set, err := rules.Load(c.Rules)
	if err != nil {
		return err
	}

	rng := randutil.NewFromTime()
	if c.Seed != 0 {
		rng = randutil.New(c.Seed)
	}

	model := tui.New(logger, rng, set)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
