// Package statistics aggregates the outcomes of simulated games into a
// report: wins per seat and the distribution of game lengths.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// GameResult is the outcome of one finished game
type GameResult struct {
	ID     string // game id, for log correlation
	Seed   int64  // RNG seed, for replay
	Winner string
	Deals  int // deals played before a winner emerged
}

// Statistics accumulates game results. Not safe for concurrent use; callers
// aggregate under their own lock.
type Statistics struct {
	Games    int
	winsBy   map[string]int
	sumDeals float64
	sumSq    float64
	maxDeals int
	minDeals int
}

// New returns an empty accumulator
func New() *Statistics {
	return &Statistics{winsBy: make(map[string]int)}
}

// Add records one game result
func (s *Statistics) Add(r GameResult) {
	s.Games++
	s.winsBy[r.Winner]++
	d := float64(r.Deals)
	s.sumDeals += d
	s.sumSq += d * d
	if r.Deals > s.maxDeals {
		s.maxDeals = r.Deals
	}
	if s.minDeals == 0 || r.Deals < s.minDeals {
		s.minDeals = r.Deals
	}
}

// Wins returns the number of games won by the named player
func (s *Statistics) Wins(player string) int {
	return s.winsBy[player]
}

// WinShare returns the fraction of games won by the named player
func (s *Statistics) WinShare(player string) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.winsBy[player]) / float64(s.Games)
}

// Winners returns the players that won at least one game, sorted by name
func (s *Statistics) Winners() []string {
	names := make([]string, 0, len(s.winsBy))
	for name := range s.winsBy {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MeanDeals returns the average number of deals per game
func (s *Statistics) MeanDeals() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.sumDeals / float64(s.Games)
}

// StdDevDeals returns the sample standard deviation of deals per game
func (s *Statistics) StdDevDeals() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanDeals()
	variance := (s.sumSq - float64(s.Games)*mean*mean) / float64(s.Games-1)
	if variance < 0 {
		variance = 0 // float rounding near zero
	}
	return math.Sqrt(variance)
}

// MinDeals returns the shortest game observed, 0 with no games
func (s *Statistics) MinDeals() int {
	return s.minDeals
}

// MaxDeals returns the longest game observed
func (s *Statistics) MaxDeals() int {
	return s.maxDeals
}

// Validate checks internal consistency after a run
func (s *Statistics) Validate() error {
	total := 0
	for _, n := range s.winsBy {
		total += n
	}
	if total != s.Games {
		return fmt.Errorf("win counts sum to %d but %d games were recorded", total, s.Games)
	}
	return nil
}

// Report renders a plain-text summary suitable for a file or the console
func (s *Statistics) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "games: %d\n", s.Games)
	fmt.Fprintf(&b, "deals per game: mean %.1f, stddev %.1f, min %d, max %d\n",
		s.MeanDeals(), s.StdDevDeals(), s.minDeals, s.maxDeals)
	for _, name := range s.Winners() {
		fmt.Fprintf(&b, "%s: %d wins (%.1f%%)\n", name, s.winsBy[name], 100*s.WinShare(name))
	}
	return b.String()
}
