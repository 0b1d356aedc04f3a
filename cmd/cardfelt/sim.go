package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cardfelt/cardfelt/internal/fileutil"
	"github.com/cardfelt/cardfelt/internal/rules"
	"github.com/cardfelt/cardfelt/internal/simulator"
	"github.com/cardfelt/cardfelt/internal/statistics"
)

type SimCmd struct {
	Rules    string `help:"Path to an HCL rules file defining the game variants" type:"path"`
	Game     string `help:"Variant to simulate" default:"five card draw"`
	Games    int    `help:"Number of games to run" default:"100"`
	Players  int    `help:"AI players per game" default:"4"`
	Seed     int64  `help:"Base RNG seed, game i uses seed+i (0 for random)" default:"0"`
	Parallel int    `help:"Concurrent games (0 for one per CPU)" default:"0"`
	Out      string `help:"Write the report to this file as well" type:"path"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func (c *SimCmd) Run() error {
	logger := log.New(os.Stderr)
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	set, err := rules.Load(c.Rules)
	if err != nil {
		return err
	}
	variant, ok := set.Lookup(c.Game)
	if !ok {
		return fmt.Errorf("no game called %q, available: %s", c.Game, strings.Join(set.Names(), ", "))
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("starting simulation",
		"game", variant.Name, "games", c.Games, "players", c.Players, "seed", seed)
	start := time.Now()

	sim := simulator.New(simulator.Config{
		Variant:  variant,
		Players:  c.Players,
		Games:    c.Games,
		Seed:     seed,
		Parallel: c.Parallel,
		Logger:   logger,
	})
	stats, err := sim.Run()
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	report(logger, stats, elapsed)
	if c.Out != "" {
		if err := fileutil.WriteFileAtomic(c.Out, []byte(stats.Report()), 0o644); err != nil {
			return err
		}
		logger.Info("report written", "path", c.Out)
	}
	return nil
}

func report(logger *log.Logger, stats *statistics.Statistics, elapsed time.Duration) {
	logger.Info("simulation finished",
		"games", stats.Games,
		"mean_deals", fmt.Sprintf("%.1f", stats.MeanDeals()),
		"elapsed", elapsed.Round(time.Millisecond))
	for _, name := range stats.Winners() {
		logger.Info("seat result", "player", name, "wins", stats.Wins(name),
			"share", fmt.Sprintf("%.1f%%", 100*stats.WinShare(name)))
	}
}
