package simulator

import (
	"testing"

	"github.com/cardfelt/cardfelt/internal/game"
	"github.com/cardfelt/cardfelt/internal/rules"
)

func drawVariant(t *testing.T) game.Variant {
	t.Helper()
	v, ok := rules.Default().Lookup("five card draw")
	if !ok {
		t.Fatal("five card draw missing from the default rules")
	}
	return v
}

func TestRunPlaysEveryGame(t *testing.T) {
	sim := New(Config{
		Variant: drawVariant(t),
		Players: 4,
		Games:   5,
		Seed:    42,
	})
	stats, err := sim.Run()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games != 5 {
		t.Errorf("expected 5 games, got %d", stats.Games)
	}
	if len(stats.Winners()) == 0 {
		t.Error("every game has a winner")
	}
	if stats.MinDeals() < 1 {
		t.Errorf("a game takes at least one deal, got %d", stats.MinDeals())
	}
}

func TestRunIsSeedDeterministic(t *testing.T) {
	config := Config{
		Variant:  drawVariant(t),
		Players:  3,
		Games:    3,
		Seed:     7,
		Parallel: 1,
	}
	first, err := New(config).Run()
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(config).Run()
	if err != nil {
		t.Fatal(err)
	}
	if first.Report() != second.Report() {
		t.Errorf("same seeds should reproduce the same outcomes:\n%s\nvs\n%s",
			first.Report(), second.Report())
	}
}

func TestRunRejectsBadPlayerCount(t *testing.T) {
	sim := New(Config{
		Variant: drawVariant(t),
		Players: 99,
		Games:   1,
	})
	if _, err := sim.Run(); err == nil {
		t.Error("expected an error for an impossible player count")
	}
}
