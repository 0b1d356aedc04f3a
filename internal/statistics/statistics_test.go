package statistics

import (
	"math"
	"strings"
	"testing"
)

func TestStatisticsAggregation(t *testing.T) {
	s := New()
	s.Add(GameResult{Winner: "alice", Deals: 4})
	s.Add(GameResult{Winner: "bob", Deals: 8})
	s.Add(GameResult{Winner: "alice", Deals: 6})

	if s.Games != 3 {
		t.Fatalf("expected 3 games, got %d", s.Games)
	}
	if s.Wins("alice") != 2 || s.Wins("bob") != 1 {
		t.Errorf("unexpected win counts: alice=%d bob=%d", s.Wins("alice"), s.Wins("bob"))
	}
	if got := s.WinShare("alice"); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("alice's share = %f, want 2/3", got)
	}
	if got := s.MeanDeals(); got != 6 {
		t.Errorf("mean deals = %f, want 6", got)
	}
	if got := s.StdDevDeals(); math.Abs(got-2) > 1e-9 {
		t.Errorf("stddev deals = %f, want 2", got)
	}
	if s.MinDeals() != 4 || s.MaxDeals() != 8 {
		t.Errorf("min/max deals = %d/%d, want 4/8", s.MinDeals(), s.MaxDeals())
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if got := s.Winners(); len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Errorf("Winners() = %v", got)
	}
}

func TestEmptyStatistics(t *testing.T) {
	s := New()
	if s.MeanDeals() != 0 || s.StdDevDeals() != 0 || s.WinShare("x") != 0 {
		t.Error("empty statistics should report zeros")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestReportFormat(t *testing.T) {
	s := New()
	s.Add(GameResult{Winner: "alice", Deals: 5})
	report := s.Report()
	if !strings.Contains(report, "games: 1") {
		t.Errorf("report missing game count:\n%s", report)
	}
	if !strings.Contains(report, "alice: 1 wins (100.0%)") {
		t.Errorf("report missing win line:\n%s", report)
	}
}
