package game

import "github.com/cardfelt/cardfelt/internal/deck"

// PlayerType distinguishes human players from AI-controlled ones
type PlayerType int

const (
	Human PlayerType = iota
	AI
)

// String returns the string representation of a player type
func (pt PlayerType) String() string {
	if pt == AI {
		return "ai"
	}
	return "human"
}

// PlayerStatus tracks a player's standing: still contesting the current
// deal, folded out of the deal, or eliminated from the game.
type PlayerStatus int

const (
	In PlayerStatus = iota
	OutOfDeal
	OutOfGame
)

// String returns the string representation of a player status
func (ps PlayerStatus) String() string {
	switch ps {
	case In:
		return "in"
	case OutOfDeal:
		return "out of deal"
	case OutOfGame:
		return "out of game"
	default:
		return "unknown"
	}
}

// HandCard is a card as dealt into a hand. The visibility and discard flags
// belong to this dealt instance, not to the card identity itself.
type HandCard struct {
	deck.Card
	FaceDown  bool
	Discarded bool
}

// Player holds a seat at the table: identity, chip stack, hand and per-deal
// betting state. Players are created once at game setup and never removed;
// elimination flips the status to OutOfGame.
type Player struct {
	Name       string
	Type       PlayerType
	Money      int
	CurrentBet int
	Status     PlayerStatus
	Hand       []*HandCard
}

// NewPlayer creates a player with a starting stack
func NewPlayer(playerType PlayerType, money int) *Player {
	return &Player{Type: playerType, Money: money, Status: In}
}

// Spend removes a positive amount from the stack and reports whether the
// player still has money left.
func (p *Player) Spend(amount int) bool {
	if amount > 0 {
		p.Money -= amount
	}
	return p.Money > 0
}

// Gain adds a positive amount to the stack
func (p *Player) Gain(amount int) {
	if amount > 0 {
		p.Money += amount
	}
}

// AddCard appends a dealt card to the hand, preserving deal order
func (p *Player) AddCard(c deck.Card, faceDown bool) *HandCard {
	hc := &HandCard{Card: c, FaceDown: faceDown}
	p.Hand = append(p.Hand, hc)
	return hc
}

// Cards returns the bare card identities of the hand, in deal order
func (p *Player) Cards() []deck.Card {
	cards := make([]deck.Card, 0, len(p.Hand))
	for _, hc := range p.Hand {
		cards = append(cards, hc.Card)
	}
	return cards
}

// DiscardCount returns how many held cards are marked for replacement
func (p *Player) DiscardCount() int {
	n := 0
	for _, hc := range p.Hand {
		if hc.Discarded {
			n++
		}
	}
	return n
}

// RemoveDiscards purges every card marked as discarded from the hand
func (p *Player) RemoveDiscards() {
	kept := p.Hand[:0]
	for _, hc := range p.Hand {
		if !hc.Discarded {
			kept = append(kept, hc)
		}
	}
	p.Hand = kept
}
