package game

import (
	"fmt"
	"strings"

	"github.com/cardfelt/cardfelt/internal/deck"
	"github.com/cardfelt/cardfelt/internal/evaluator"
)

// StartGame begins play: the first deal is set up and AI turns run until a
// human must act or the game is over.
func (t *Table) StartGame() error {
	if len(t.players) == 0 {
		return fmt.Errorf("no players configured")
	}
	if len(t.rounds) == 0 {
		return fmt.Errorf("no game variant configured")
	}
	t.writeLine("Game starting.")
	t.newDeal()
	t.runAI()
	return nil
}

// Advance moves the game forward after the current player has finished
// acting: to the next player still in the round, the next round, the next
// deal, or the end of the game, in that priority order. AI turns then run
// until control must return to a human.
func (t *Table) Advance() {
	t.step()
	t.runAI()
}

// step performs one turn-advancement transition.
func (t *Table) step() {
	if t.gameOver {
		return
	}
	in := t.playersIn()

	// Last player standing wins the pot outright and a new deal begins.
	if len(in) <= 1 {
		if len(in) == 1 {
			t.victory(in[0])
		}
		t.checkOnly = false
		if !t.gameOver {
			t.newDeal()
		}
		return
	}

	// A common card is dealt once per round by a single nominal player;
	// the round advances immediately for everyone.
	if t.Round() == DealCommon {
		t.checkOnly = false
		if t.currentRound+1 < len(t.rounds) && t.rounds[t.currentRound+1] != Showdown {
			t.currentRound++
			t.currentPlayer = t.firstIn()
			t.prompt()
			return
		}
		t.resolveShowdown(in)
		if !t.gameOver {
			t.newDeal()
		}
		return
	}

	// Next player still in, within the same round.
	if np := t.nextInAfter(t.currentPlayer); np != nil {
		t.currentPlayer = np
		t.prompt()
		return
	}

	// End of a betting round with unmatched bets: restart it in
	// check-only mode to force stragglers to check or fold.
	if t.Round() == Bet && !t.allBetsMatched(in) {
		t.checkOnly = true
		t.currentPlayer = t.firstIn()
		t.prompt()
		return
	}

	// Further rounds remain before the showdown.
	if t.currentRound+1 < len(t.rounds) && t.rounds[t.currentRound+1] != Showdown {
		t.checkOnly = false
		t.currentRound++
		t.currentPlayer = t.firstIn()
		t.prompt()
		return
	}

	t.resolveShowdown(in)
	t.checkOnly = false
	if !t.gameOver {
		t.newDeal()
	}
}

// runAI plays AI turns to completion, synchronously, until it is a human's
// turn or the game ends.
func (t *Table) runAI() {
	for !t.gameOver && t.currentPlayer != nil &&
		t.currentPlayer.Type == AI && t.currentPlayer.Status == In {
		t.autoPlay(t.currentPlayer)
		t.step()
	}
}

// newDeal resets the table for the next deal: fresh shuffled deck, cleared
// hands, bets and common cards, folded players back in, broke players out.
func (t *Table) newDeal() {
	if t.gameOver {
		return
	}
	for _, p := range t.players {
		if p.Money <= 0 && p.Status != OutOfGame {
			t.loss(p)
		}
	}
	outCount := 0
	for _, p := range t.players {
		if p.Status == OutOfGame {
			outCount++
		}
	}
	if outCount >= len(t.players)-1 {
		t.winner = t.firstNotOut()
		t.finishGame()
		return
	}

	t.pot = 0
	if t.deal > 0 && t.anteDoubles {
		t.ante *= 2
	}
	t.currentRound = 0
	t.pile = deck.New(t.rng)
	t.commonCards = nil
	for _, p := range t.players {
		if p.Status == OutOfDeal {
			p.Status = In
		}
		p.Hand = nil
		p.CurrentBet = 0
		if p.Money <= 0 && p.Status != OutOfGame {
			t.loss(p)
		}
	}
	if t.gameOver {
		return
	}
	t.currentPlayer = t.firstNotOut()
	t.deal++

	t.view.WriteLine("New deal.")
	t.view.WriteLine(fmt.Sprintf("Deal #%d, players in:", t.deal))
	for _, p := range t.playersIn() {
		t.view.WriteLine(fmt.Sprintf("- %s (%d)", p.Name, p.Money))
	}
	t.view.Refresh()
	if t.logger != nil {
		t.logger.Debug("new deal", "deal", t.deal, "ante", t.ante, "players", len(t.playersIn()))
	}
	t.prompt()
}

// prompt announces whose turn it is and, for humans, the available commands
func (t *Table) prompt() {
	if t.gameOver || t.currentPlayer == nil {
		return
	}
	t.view.WriteLine(fmt.Sprintf("Game: %s, Player: %s, round= %s",
		t.variant.Name, t.currentPlayer.Name, t.Round()))
	if t.currentPlayer.Type == Human {
		t.view.WriteLine("Possible actions are: " +
			strings.Join(t.PossibleActions(t.Round()), " "))
	}
	t.view.Refresh()
}

// allBetsMatched reports whether every player still in has matched the
// table's maximum bet.
func (t *Table) allBetsMatched(in []*Player) bool {
	maxBet := t.CurrentMaxBet()
	for _, p := range in {
		if p.CurrentBet != maxBet {
			return false
		}
	}
	return true
}

// resolveShowdown settles the pot among the players still in, combining
// each hand with the common cards. With no unique winner the pot splits
// evenly (integer division) among them.
func (t *Table) resolveShowdown(in []*Player) {
	hands := make([][]deck.Card, len(in))
	for i, p := range in {
		hands[i] = append(p.Cards(), t.commonCards...)
	}
	idx := evaluator.Showdown(hands)
	if idx < 0 {
		share := t.pot / len(in)
		for _, p := range in {
			p.Gain(share)
		}
		t.writeLine("Draw ! All remaining players split the pot.")
		return
	}
	winner := in[idx]
	best := evaluator.Evaluate(hands[idx])
	t.view.WriteLine(fmt.Sprintf("The winning hand is: %s with :", best.Category))
	for _, c := range best.Cards {
		t.view.WriteLine("-" + c.String())
	}
	t.view.Refresh()
	t.victory(winner)
}

// victory awards the pot for this deal, then ends the game if nobody else
// can continue.
func (t *Table) victory(p *Player) {
	if t.gameOver {
		return
	}
	p.Gain(t.pot)
	t.writeLine(fmt.Sprintf("%s has won the deal with a pot of %d", p.Name, t.pot))
	for _, o := range t.players {
		if o != p && o.Money > 0 && o.Status != OutOfGame {
			return
		}
	}
	t.winner = p
	t.finishGame()
}

// loss eliminates a player whose money is gone, ending the game when at
// most one player is left.
func (t *Table) loss(p *Player) {
	if t.gameOver {
		return
	}
	p.Status = OutOfGame
	t.writeLine(fmt.Sprintf("With no money left, %s has lost the game.", p.Name))
	remaining := 0
	for _, o := range t.players {
		if o.Status != OutOfGame {
			remaining++
		}
	}
	if remaining <= 1 {
		t.winner = t.firstNotOut()
		t.finishGame()
	}
}

func (t *Table) finishGame() {
	if t.winner != nil {
		t.writeLine(fmt.Sprintf("The game is finished. Winner: %s with %d chips",
			t.winner.Name, t.winner.Money))
	} else {
		t.writeLine("The game is finished.")
	}
	t.gameOver = true
}
