// Package evaluator classifies poker hands of five or more cards and
// resolves showdowns between them. All functions are pure: inputs are never
// mutated and no state is kept between calls.
package evaluator

import (
	"sort"

	"github.com/cardfelt/cardfelt/internal/deck"
)

// Category is one of the nine ordered poker hand ranks
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPairs:
		return "two pairs"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	default:
		return "unknown"
	}
}

// BestHand pairs a category with the specific cards that justify it. The
// supporting cards drive tie-breaking and display.
type BestHand struct {
	Category Category
	Cards    []deck.Card
}

// Evaluate finds the single best category in a hand of arbitrary size
// (5 to 7 under the configured variants, hole plus common cards).
// Categories are tested strictly in descending order; the first match wins.
func Evaluate(hand []deck.Card) BestHand {
	grouped := groupByFace(hand)
	if cards := straightFlush(hand); cards != nil {
		return BestHand{StraightFlush, cards}
	}
	if cards := findGroup(grouped, 4); cards != nil {
		return BestHand{FourOfAKind, cards}
	}
	if cards := fullHouse(grouped); cards != nil {
		return BestHand{FullHouse, cards}
	}
	if cards := flushGroup(hand); cards != nil {
		return BestHand{Flush, cards}
	}
	if cards := straightRun(hand); cards != nil {
		return BestHand{Straight, cards}
	}
	if cards := findGroup(grouped, 3); cards != nil {
		return BestHand{ThreeOfAKind, cards}
	}
	if cards := twoPairs(grouped); cards != nil {
		return BestHand{TwoPairs, cards}
	}
	if cards := findGroup(grouped, 2); cards != nil {
		return BestHand{OnePair, cards}
	}
	if len(hand) > 0 {
		return BestHand{HighCard, []deck.Card{HighestCard(hand)}}
	}
	return BestHand{HighCard, nil}
}

// HighestCard returns the highest-ranked card in a non-empty hand
func HighestCard(hand []deck.Card) deck.Card {
	best := hand[0]
	for _, c := range hand[1:] {
		if c.Compare(best) > 0 {
			best = c
		}
	}
	return best
}

// groupByFace partitions a hand into face groups, preserving the order in
// which each face is first encountered.
func groupByFace(hand []deck.Card) [][]deck.Card {
	index := make(map[deck.Face]int, len(hand))
	var groups [][]deck.Card
	for _, c := range hand {
		i, ok := index[c.Face]
		if !ok {
			i = len(groups)
			index[c.Face] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], c)
	}
	return groups
}

// findGroup returns the first face group of exactly n cards, or nil.
// The size match is exact: a four of a kind is not also a three of a kind.
func findGroup(groups [][]deck.Card, n int) []deck.Card {
	for _, g := range groups {
		if len(g) == n {
			return g
		}
	}
	return nil
}

// fullHouse requires a group of exactly three and a separate group of
// exactly two, both present at once. The supporting cards are the three of a
// kind alone, matching how showdown tie-breaks cascade through them.
func fullHouse(groups [][]deck.Card) []deck.Card {
	three := findGroup(groups, 3)
	two := findGroup(groups, 2)
	if three != nil && two != nil {
		return three
	}
	return nil
}

// twoPairs finds one pair, sets its cards aside, then looks for a second
// pair in the remainder. A lone pair fails.
func twoPairs(groups [][]deck.Card) []deck.Card {
	first := findGroup(groups, 2)
	if first == nil {
		return nil
	}
	var remainder [][]deck.Card
	for _, g := range groups {
		if g[0].Face != first[0].Face {
			remainder = append(remainder, g)
		}
	}
	second := findGroup(remainder, 2)
	if second == nil {
		return nil
	}
	return append(append([]deck.Card{}, first...), second...)
}

// flushGroup groups the hand by suit and returns the suit group holding five
// or more cards, nil if there is none. The original matched only groups of
// strictly more than five here, returning no cards for an exactly-five-card
// flush; we return the full group instead (decision recorded in DESIGN.md).
func flushGroup(hand []deck.Card) []deck.Card {
	index := make(map[deck.Suit]int, 4)
	var groups [][]deck.Card
	for _, c := range hand {
		i, ok := index[c.Suit]
		if !ok {
			i = len(groups)
			index[c.Suit] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], c)
	}
	for _, g := range groups {
		if len(g) >= 5 {
			return g
		}
	}
	return nil
}

// straightRun scans the hand, sorted ascending by face, for a run of five
// consecutive faces. A single left-to-right pass returns the lowest five
// cards of the first qualifying run; it deliberately does not hunt for the
// highest straight in the hand, and an Ace never connects below a Two.
func straightRun(hand []deck.Card) []deck.Card {
	ordered := make([]deck.Card, len(hand))
	copy(ordered, hand)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Compare(ordered[j]) < 0
	})
	i, start := 1, 0
	for start+i < len(ordered) {
		if ordered[start+i].Face == ordered[start+i-1].Face+1 {
			i++
		} else {
			start++
		}
	}
	if i >= 5 {
		return ordered[start : start+5]
	}
	return nil
}

// straightFlush succeeds only when the hand holds a straight whose five
// cards are all part of the hand's flush suit.
func straightFlush(hand []deck.Card) []deck.Card {
	straight := straightRun(hand)
	flush := flushGroup(hand)
	if straight == nil || flush == nil {
		return nil
	}
	for _, c := range straight {
		if !containsCard(flush, c) {
			return nil
		}
	}
	return straight
}

func containsCard(cards []deck.Card, card deck.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
