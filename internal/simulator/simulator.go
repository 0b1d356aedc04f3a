// Package simulator plays AI-only games to completion, concurrently, and
// aggregates the outcomes. It is the engine behind the sim command and the
// main harness for exercising the whole deal loop without a terminal.
package simulator

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/cardfelt/cardfelt/internal/game"
	"github.com/cardfelt/cardfelt/internal/gameid"
	"github.com/cardfelt/cardfelt/internal/randutil"
	"github.com/cardfelt/cardfelt/internal/statistics"
)

// Config holds the parameters of one simulation run
type Config struct {
	Variant  game.Variant
	Players  int
	Games    int
	Seed     int64 // game i plays with Seed+i
	Parallel int   // concurrent games, 0 for one per CPU
	Logger   *log.Logger
}

// Simulator runs batches of self-playing games
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run plays every configured game and returns the aggregated statistics
func (s *Simulator) Run() (*statistics.Statistics, error) {
	if s.config.Players < s.config.Variant.MinPlayers ||
		s.config.Players > s.config.Variant.MaxPlayers {
		return nil, fmt.Errorf("%s takes %d to %d players",
			s.config.Variant.Name, s.config.Variant.MinPlayers, s.config.Variant.MaxPlayers)
	}
	parallel := s.config.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	stats := statistics.New()
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(parallel)
	for i := 0; i < s.config.Games; i++ {
		seed := s.config.Seed + int64(i)
		g.Go(func() error {
			result, err := s.playGame(seed)
			if err != nil {
				return fmt.Errorf("game %s (seed %d): %w", result.ID, seed, err)
			}
			mu.Lock()
			stats.Add(result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return stats, nil
}

// playGame runs one all-AI game to the end. The ante is forced to double
// every deal so a game cannot stall: the ante eventually exceeds every stack
// and short stacks go broke.
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	result := statistics.GameResult{ID: gameid.Generate(), Seed: seed}

	variant := s.config.Variant
	variant.AnteDoubles = true
	table := game.NewTable(game.NopView{}, nil, randutil.New(seed))
	table.SetGame(variant)
	if !table.SetNumberOfPlayers(fmt.Sprintf("%d", s.config.Players)) {
		return result, fmt.Errorf("bad player count %d", s.config.Players)
	}
	if !table.SetPlayerTypes(strings.Repeat("a", s.config.Players)) {
		return result, fmt.Errorf("failed to seat players")
	}
	table.SetPlayerNames("")
	if err := table.StartGame(); err != nil {
		return result, err
	}
	if !table.GameOver() {
		return result, fmt.Errorf("game stopped without finishing")
	}
	winner := table.Winner()
	if winner == nil {
		return result, fmt.Errorf("game finished without a winner")
	}
	result.Winner = winner.Name
	result.Deals = table.Deal()
	if s.config.Logger != nil {
		s.config.Logger.Debug("game finished",
			"game", result.ID, "seed", seed, "winner", result.Winner, "deals", result.Deals)
	}
	return result, nil
}
