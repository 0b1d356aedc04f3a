package deck

import (
	"fmt"
	"strings"
)

// Face represents a card face, Two through Ace. Aces are always high: there
// is no context in which an Ace connects below a Two.
type Face int

const (
	Two Face = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character token for a face
func (f Face) String() string {
	switch f {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Name returns the long name of a face (e.g. "Ten")
func (f Face) Name() string {
	names := [...]string{"Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}
	if f < Two || f > Ace {
		return "Unknown"
	}
	return names[f]
}

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the long name of a suit (e.g. "Hearts")
func (s Suit) Name() string {
	names := [...]string{"Clubs", "Diamonds", "Hearts", "Spades"}
	if s < Clubs || s > Spades {
		return "Unknown"
	}
	return names[s]
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable playing card identified by face and suit.
// Two cards are the same card iff both face and suit match; ordering
// considers the face only, so Compare returning 0 does not imply equality.
type Card struct {
	Face Face
	Suit Suit
}

// NewCard creates a new card
func NewCard(face Face, suit Suit) Card {
	return Card{Face: face, Suit: suit}
}

// String returns the display representation of a card (e.g. "T♥")
func (c Card) String() string {
	return c.Face.String() + c.Suit.String()
}

// Code returns the canonical two-character token for a card (e.g. "th"),
// the form accepted at the command boundary.
func (c Card) Code() string {
	suits := [...]string{"c", "d", "h", "s"}
	return strings.ToLower(c.Face.String()) + suits[c.Suit]
}

// Compare orders cards by face alone. Negative if c is weaker than o,
// zero if the faces match, positive if stronger.
func (c Card) Compare(o Card) int {
	return int(c.Face) - int(o.Face)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseFace parses a face token (2-9, t, j, q, k, a), case-insensitive
func ParseFace(s string) (Face, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2":
		return Two, true
	case "3":
		return Three, true
	case "4":
		return Four, true
	case "5":
		return Five, true
	case "6":
		return Six, true
	case "7":
		return Seven, true
	case "8":
		return Eight, true
	case "9":
		return Nine, true
	case "t":
		return Ten, true
	case "j":
		return Jack, true
	case "q":
		return Queen, true
	case "k":
		return King, true
	case "a":
		return Ace, true
	default:
		return 0, false
	}
}

// ParseSuit parses a suit token (c, d, h, s), case-insensitive
func ParseSuit(s string) (Suit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c":
		return Clubs, true
	case "d":
		return Diamonds, true
	case "h":
		return Hearts, true
	case "s":
		return Spades, true
	default:
		return 0, false
	}
}

// ParseCard parses a two-character face+suit token such as "th" or "As"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card token %q: want two characters", s)
	}
	face, ok := ParseFace(s[:1])
	if !ok {
		return Card{}, fmt.Errorf("invalid face %q in card token %q", s[:1], s)
	}
	suit, ok := ParseSuit(s[1:])
	if !ok {
		return Card{}, fmt.Errorf("invalid suit %q in card token %q", s[1:], s)
	}
	return Card{Face: face, Suit: suit}, nil
}

// ParseCards parses a run of two-character card tokens, with or without
// separating spaces (e.g. "ah kh qh" or "ahkhqh").
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length %d: must be even", len(s))
	}
	var cards []Card
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}
