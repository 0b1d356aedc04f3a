package evaluator

import (
	"testing"

	"github.com/cardfelt/cardfelt/internal/deck"
)

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		expected Category
	}{
		{"high card", "2c 5d 9h jc ks", HighCard},
		{"one pair", "2c 2d 9h jc ks", OnePair},
		{"two pairs", "2c 2d 9h 9c ks", TwoPairs},
		{"three of a kind", "2c 2d 2h jc ks", ThreeOfAKind},
		{"straight", "5c 6d 7h 8c 9s", Straight},
		{"ace high straight", "tc jd qh kc as", Straight},
		{"flush", "2h 5h 9h jh kh", Flush},
		{"full house", "2c 2d 2h kc ks", FullHouse},
		{"four of a kind", "2c 2d 2h 2s ks", FourOfAKind},
		{"straight flush", "5h 6h 7h 8h 9h", StraightFlush},
		{"seven card hand finds the set", "2c 2d 2h jc ks 7d 4c", ThreeOfAKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := Evaluate(deck.MustParseCards(tt.hand))
			if best.Category != tt.expected {
				t.Errorf("Evaluate(%s) = %s, want %s", tt.hand, best.Category, tt.expected)
			}
		})
	}
}

// A hand is exactly one category: the group sizes are matched exactly, so
// four of a kind is never also reported as a pair or a set.
func TestGroupSizesAreExact(t *testing.T) {
	quad := deck.MustParseCards("2c 2d 2h 2s ks")
	if best := Evaluate(quad); best.Category != FourOfAKind {
		t.Errorf("got %s, want four of a kind", best.Category)
	}
	boat := deck.MustParseCards("2c 2d 2h kc ks")
	if best := Evaluate(boat); best.Category != FullHouse {
		t.Errorf("got %s, want full house", best.Category)
	}
}

func TestNoWheelStraight(t *testing.T) {
	// Ace never plays low, so A-2-3-4-5 is just ace high.
	best := Evaluate(deck.MustParseCards("ah 2c 3d 4h 5s"))
	if best.Category != HighCard {
		t.Errorf("A2345 evaluated as %s, want high card", best.Category)
	}
	if len(best.Cards) != 1 || best.Cards[0].Face != deck.Ace {
		t.Errorf("high card should be the ace, got %v", best.Cards)
	}
}

// With seven cards holding two overlapping runs, the scan keeps the first
// (lowest) qualifying run rather than hunting for the highest.
func TestStraightTakesFirstRun(t *testing.T) {
	best := Evaluate(deck.MustParseCards("5c 6d 7h 8c 9s td jd"))
	if best.Category != Straight {
		t.Fatalf("got %s, want straight", best.Category)
	}
	if len(best.Cards) != 5 {
		t.Fatalf("expected 5 supporting cards, got %d", len(best.Cards))
	}
	if best.Cards[0].Face != deck.Five || best.Cards[4].Face != deck.Nine {
		t.Errorf("expected the 5..9 run, got %v", best.Cards)
	}
}

func TestFlushSupportingCards(t *testing.T) {
	best := Evaluate(deck.MustParseCards("2h 5h 9h jh kh"))
	if best.Category != Flush {
		t.Fatalf("got %s, want flush", best.Category)
	}
	if len(best.Cards) != 5 {
		t.Errorf("an exactly-five-card flush should return its 5 cards, got %d", len(best.Cards))
	}
	for _, c := range best.Cards {
		if c.Suit != deck.Hearts {
			t.Errorf("off-suit card %v in flush support", c)
		}
	}
}

func TestStraightFlushRequiresMatchingSuits(t *testing.T) {
	// Six hearts plus an off-suit card inside the run: the straight the scan
	// finds uses the off-suit nine, so this is only a flush.
	hand := deck.MustParseCards("5h 6h 7h 8h 9c th 2h")
	best := Evaluate(hand)
	if best.Category == StraightFlush {
		t.Errorf("straight using an off-suit card must not count as a straight flush")
	}
}

func TestFullHouseSupportIsTheSet(t *testing.T) {
	best := Evaluate(deck.MustParseCards("qc qd qh 3c 3s"))
	if best.Category != FullHouse {
		t.Fatalf("got %s, want full house", best.Category)
	}
	if len(best.Cards) != 3 {
		t.Fatalf("full house support should be the three of a kind, got %d cards", len(best.Cards))
	}
	for _, c := range best.Cards {
		if c.Face != deck.Queen {
			t.Errorf("unexpected support card %v", c)
		}
	}
}

func TestEvaluateEmptyHand(t *testing.T) {
	best := Evaluate(nil)
	if best.Category != HighCard || best.Cards != nil {
		t.Errorf("empty hand should be a bare high card, got %s %v", best.Category, best.Cards)
	}
}
