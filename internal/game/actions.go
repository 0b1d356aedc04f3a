package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cardfelt/cardfelt/internal/deck"
)

// Action errors. Illegal actions are no-op failures: the table's state is
// never touched before the guards pass and the caller is expected to
// re-prompt.
var (
	ErrWrongRound = errors.New("action not available in the current round")
	ErrCheckOnly  = errors.New("everyone has already bet on this round, check or fold")
	ErrBadBet     = errors.New("bet amount out of range")
	ErrNoSuchCard = errors.New("card is not in hand")
)

// PlaceAnte pays the configured ante, or whatever is left of the player's
// stack if that is less. A player left with nothing is eliminated on the
// spot, in which case -1 is returned instead of the amount paid.
func (t *Table) PlaceAnte() (int, error) {
	if t.Round() != Ante {
		return 0, fmt.Errorf("cannot place the ante right now: %w", ErrWrongRound)
	}
	p := t.currentPlayer
	ante := t.ante
	if p.Money < ante {
		ante = p.Money
	}
	p.Spend(ante)
	t.pot += ante
	if p.Type == AI {
		t.writeLine(fmt.Sprintf("%s places %d as ante.", p.Name, ante))
	}
	if p.Money <= 0 {
		t.loss(p)
		return -1, nil
	}
	return ante, nil
}

// CheckBet matches the table's current maximum bet, paying the difference
// capped at the player's remaining stack. A short stack pays everything it
// has; the recorded bet still counts as matched. Returns the amount paid,
// which can be zero.
func (t *Table) CheckBet() (int, error) {
	if t.Round() != Bet {
		return 0, fmt.Errorf("cannot check right now: %w", ErrWrongRound)
	}
	p := t.currentPlayer
	maxBet := t.CurrentMaxBet()
	paid := maxBet - p.CurrentBet
	if paid > p.Money {
		paid = p.Money
	}
	p.Spend(paid)
	p.CurrentBet = maxBet
	t.pot += paid
	if p.Type == AI {
		t.writeLine(fmt.Sprintf("%s checks.", p.Name))
	}
	return paid, nil
}

// PlaceBet places a bet of the named amount, or the player's whole remaining
// entitlement when the argument is "all". A numeric amount must lie between
// the current minimum bettable and the player's bet-to-date plus stack. On
// success the incremental spend moves to the pot and the recorded
// bet-to-date becomes the named amount; the total is returned.
func (t *Table) PlaceBet(s string) (int, error) {
	if t.Round() != Bet {
		return 0, fmt.Errorf("cannot bet right now: %w", ErrWrongRound)
	}
	if t.checkOnly {
		return 0, ErrCheckOnly
	}
	p := t.currentPlayer
	min := t.CurrentMaxBet()
	if t.ante > min {
		min = t.ante
	}
	var amount int
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "all" {
		amount = p.CurrentBet + p.Money
		t.writeLine(fmt.Sprintf("%s is all in.", p.Name))
	} else {
		bet, err := strconv.Atoi(normalized)
		if err != nil {
			return 0, fmt.Errorf("invalid bet %q: %w", s, ErrBadBet)
		}
		if bet < min || bet > p.CurrentBet+p.Money {
			return 0, fmt.Errorf("bet %d not between %d and %d: %w",
				bet, min, p.CurrentBet+p.Money, ErrBadBet)
		}
		amount = bet
	}
	match := amount - p.CurrentBet
	if match > p.Money {
		match = p.Money
	}
	p.Spend(match)
	t.pot += match
	p.CurrentBet = amount
	if p.Type == AI {
		t.writeLine(fmt.Sprintf("%s bets %d", p.Name, amount))
	}
	return amount, nil
}

// FoldBet folds: the player is out of this deal and forfeits any claim to
// the pot.
func (t *Table) FoldBet() error {
	if t.Round() != Bet {
		return fmt.Errorf("cannot fold right now: %w", ErrWrongRound)
	}
	p := t.currentPlayer
	p.Status = OutOfDeal
	if p.Type == AI {
		t.writeLine(fmt.Sprintf("%s folds.", p.Name))
	}
	return nil
}

// QuitGame removes the current player from the game, keeping their chips.
// Returns the player's gains: money left minus the starting stack.
func (t *Table) QuitGame() (int, error) {
	if t.Round() != Bet && t.Round() != Ante {
		return 0, fmt.Errorf("cannot quit right now: %w", ErrWrongRound)
	}
	p := t.currentPlayer
	p.Status = OutOfGame
	p.CurrentBet = 0
	return p.Money - t.baseMoney, nil
}

// DiscardCard marks one of the current player's cards for replacement,
// identified by its two-character face+suit token.
func (t *Table) DiscardCard(code string) error {
	if !t.Round().IsDraw() {
		return fmt.Errorf("cannot discard right now: %w", ErrWrongRound)
	}
	card, err := deck.ParseCard(code)
	if err != nil {
		return err
	}
	for _, hc := range t.currentPlayer.Hand {
		if hc.Card == card {
			hc.Discarded = true
			return nil
		}
	}
	return fmt.Errorf("%s: %w", card, ErrNoSuchCard)
}

// DealCardDown deals one card face down to the current player
func (t *Table) DealCardDown() (deck.Card, error) {
	if t.Round() != DealDown {
		return deck.Card{}, fmt.Errorf("cannot deal right now: %w", ErrWrongRound)
	}
	return t.dealTo(t.currentPlayer, true), nil
}

// DealCardUp deals one card face up to the current player
func (t *Table) DealCardUp() (deck.Card, error) {
	if t.Round() != DealUp {
		return deck.Card{}, fmt.Errorf("cannot deal right now: %w", ErrWrongRound)
	}
	return t.dealTo(t.currentPlayer, false), nil
}

// DealCardCommon deals one card into the shared pool. Unlike the other deal
// rounds this happens once per round, not once per player.
func (t *Table) DealCardCommon() (deck.Card, error) {
	if t.Round() != DealCommon {
		return deck.Card{}, fmt.Errorf("cannot deal right now: %w", ErrWrongRound)
	}
	c := t.mustPop()
	t.commonCards = append(t.commonCards, c)
	return c, nil
}

// DrawCardsDown replaces the current player's discards with face-down cards
func (t *Table) DrawCardsDown() ([]deck.Card, error) {
	if t.Round() != MayDrawDown {
		return nil, fmt.Errorf("cannot draw right now: %w", ErrWrongRound)
	}
	return t.drawReplacements(true), nil
}

// DrawCardsUp replaces the current player's discards with face-up cards
func (t *Table) DrawCardsUp() ([]deck.Card, error) {
	if t.Round() != MayDrawUp {
		return nil, fmt.Errorf("cannot draw right now: %w", ErrWrongRound)
	}
	return t.drawReplacements(false), nil
}

func (t *Table) dealTo(p *Player, faceDown bool) deck.Card {
	c := t.mustPop()
	p.AddCard(c, faceDown)
	if p.Type == AI {
		if faceDown {
			t.writeLine(fmt.Sprintf("%s receives a card.", p.Name))
		} else {
			t.writeLine(fmt.Sprintf("%s receives %s", p.Name, c))
		}
	}
	return c
}

// drawReplacements draws one card per discarded card, then purges the
// discards from the hand. Returns nil when nothing was discarded.
func (t *Table) drawReplacements(faceDown bool) []deck.Card {
	p := t.currentPlayer
	n := p.DiscardCount()
	if n <= 0 {
		return nil
	}
	drawn := make([]deck.Card, 0, n)
	for i := 0; i < n; i++ {
		drawn = append(drawn, t.dealTo(p, faceDown))
	}
	p.RemoveDiscards()
	return drawn
}

func (t *Table) writeLine(s string) {
	t.view.WriteLine(s)
	t.view.Refresh()
}
