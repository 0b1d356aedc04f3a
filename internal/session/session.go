// Package session drives one interactive game: the staged setup dialogue,
// then the command loop of the play itself. It sits between a line-oriented
// front end (terminal UI or plain reader) and the table, translating input
// lines into table operations and narrating the results.
package session

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cardfelt/cardfelt/internal/deck"
	"github.com/cardfelt/cardfelt/internal/game"
	"github.com/cardfelt/cardfelt/internal/rules"
)

// Stage tracks how far the setup dialogue has progressed. Once Playing is
// reached, input lines are game commands.
type Stage int

const (
	GameChoice Stage = iota
	NumberOfPlayers
	PlayerTypes
	PlayerNames
	AnteAmount
	AnteDoubles
	Playing
	Finished
)

// Session owns one game from greeting to winner. Interpret is its only
// entry point; it is not safe for concurrent use.
type Session struct {
	stage  Stage
	table  *game.Table
	set    *rules.Set
	view   game.View
	logger *log.Logger
}

// New creates a session and writes the greeting. The caller feeds it input
// lines via Interpret.
func New(view game.View, logger *log.Logger, rng *rand.Rand, set *rules.Set) *Session {
	s := &Session{
		table:  game.NewTable(view, logger, rng),
		set:    set,
		view:   view,
		logger: logger,
	}
	s.writeLine("Welcome to the card table.")
	s.promptGameChoice()
	return s
}

// Table exposes the underlying table, mainly for status rendering
func (s *Session) Table() *game.Table {
	return s.table
}

// Stage returns the current setup stage
func (s *Session) Stage() Stage {
	return s.stage
}

// Interpret consumes one input line and reports whether the session is
// over. Bad input never advances the dialogue; the stage prompt repeats.
func (s *Session) Interpret(line string) bool {
	trimmed := strings.TrimSpace(line)
	if s.stage != Playing {
		switch strings.ToLower(trimmed) {
		case "quit", "exit":
			s.writeLine("Bye.")
			s.stage = Finished
			return true
		}
		s.interpretSetup(trimmed)
		return s.stage == Finished
	}
	return s.interpretCommand(trimmed)
}

func (s *Session) interpretSetup(line string) {
	switch s.stage {
	case GameChoice:
		v, ok := s.set.Lookup(line)
		if !ok {
			s.writeLine(fmt.Sprintf("No game called %q.", line))
			s.promptGameChoice()
			return
		}
		s.table.SetGame(v)
		s.stage = NumberOfPlayers
		s.writeLine(fmt.Sprintf("How many players? (%d to %d)", v.MinPlayers, v.MaxPlayers))
	case NumberOfPlayers:
		if !s.table.SetNumberOfPlayers(line) {
			s.writeLine("That is not a valid player count for this game.")
			return
		}
		s.stage = PlayerTypes
		s.writeLine("Who plays each seat? One letter per player, h for human, a for computer (e.g. haaa).")
	case PlayerTypes:
		if !s.table.SetPlayerTypes(line) {
			s.writeLine("That is not a valid seating, use only h and a, one per player.")
			return
		}
		s.stage = PlayerNames
		s.writeLine("Name the players, separated by spaces, or press enter for default names.")
	case PlayerNames:
		if !s.table.SetPlayerNames(line) {
			s.writeLine("Give exactly one name per player, or none at all.")
			return
		}
		s.stage = AnteAmount
		s.writeLine(fmt.Sprintf("Ante is %d. Enter another amount, or press enter to keep it.", s.table.Ante()))
	case AnteAmount:
		if !s.table.SetAnte(line) {
			s.writeLine("The ante must be positive and below half the starting money.")
			return
		}
		s.stage = AnteDoubles
		s.writeLine("Should the ante double every deal? yes/no, or press enter for the game default.")
	case AnteDoubles:
		if !s.table.SetAnteDoubles(line) {
			s.writeLine("Answer yes, no, or press enter.")
			return
		}
		s.stage = Playing
		if err := s.table.StartGame(); err != nil {
			s.writeLine("Could not start the game: " + err.Error())
			s.stage = Finished
			return
		}
		if s.table.GameOver() {
			s.stage = Finished
		}
	}
}

func (s *Session) interpretCommand(line string) bool {
	intent, err := ParseIntent(line)
	if err != nil {
		s.writeLine(err.Error() + " Type help for the command list.")
		return false
	}

	switch in := intent.(type) {
	case QuitIntent:
		s.writeLine("Bye.")
		s.stage = Finished
		return true
	case HelpIntent:
		s.printHelp(in.Topic)
		return false
	case StatusIntent:
		s.printStatus()
		return false
	case CardsIntent:
		s.printCards()
		return false
	case AnteIntent:
		amount, err := s.table.PlaceAnte()
		if err != nil {
			s.complain(err)
			return false
		}
		if amount >= 0 {
			s.writeLine(fmt.Sprintf("You place %d as ante.", amount))
		}
		s.table.Advance()
	case BetIntent:
		amount, err := s.table.PlaceBet(in.Amount)
		if err != nil {
			s.complain(err)
			return false
		}
		s.writeLine(fmt.Sprintf("Your bet stands at %d.", amount))
		s.table.Advance()
	case CheckIntent:
		paid, err := s.table.CheckBet()
		if err != nil {
			s.complain(err)
			return false
		}
		if paid > 0 {
			s.writeLine(fmt.Sprintf("You pay %d to stay in.", paid))
		} else {
			s.writeLine("You check.")
		}
		s.table.Advance()
	case FoldIntent:
		if err := s.table.FoldBet(); err != nil {
			s.complain(err)
			return false
		}
		s.writeLine("You fold.")
		s.table.Advance()
	case DiscardIntent:
		if err := s.table.DiscardCard(in.Card); err != nil {
			s.complain(err)
			return false
		}
		s.writeLine("Discarded. Type next when you are done.")
	case OutIntent:
		gains, err := s.table.QuitGame()
		if err != nil {
			s.complain(err)
			return false
		}
		s.writeLine(fmt.Sprintf("You leave the game. Net gains: %d.", gains))
		s.table.Advance()
	case NextIntent:
		if !s.doNext() {
			return false
		}
		s.table.Advance()
	}

	if s.table.GameOver() {
		s.stage = Finished
		return true
	}
	return false
}

// doNext performs the dealing or drawing that "next" implies in the current
// round. Reports whether the turn should then advance.
func (s *Session) doNext() bool {
	switch s.table.Round() {
	case game.DealDown:
		c, err := s.table.DealCardDown()
		if err != nil {
			s.complain(err)
			return false
		}
		s.writeLine("You receive " + c.String())
	case game.DealUp:
		c, err := s.table.DealCardUp()
		if err != nil {
			s.complain(err)
			return false
		}
		s.writeLine("You receive " + c.String() + " face up.")
	case game.DealCommon:
		c, err := s.table.DealCardCommon()
		if err != nil {
			s.complain(err)
			return false
		}
		s.writeLine("Common card: " + c.String())
	case game.MayDrawDown:
		drawn, err := s.table.DrawCardsDown()
		if err != nil {
			s.complain(err)
			return false
		}
		s.announceDrawn(drawn)
	case game.MayDrawUp:
		drawn, err := s.table.DrawCardsUp()
		if err != nil {
			s.complain(err)
			return false
		}
		s.announceDrawn(drawn)
	default:
		s.complain(game.ErrWrongRound)
		return false
	}
	return true
}

func (s *Session) announceDrawn(drawn []deck.Card) {
	if len(drawn) == 0 {
		s.writeLine("No cards drawn.")
		return
	}
	s.view.WriteLine("You draw:")
	for _, c := range drawn {
		s.view.WriteLine("- " + c.String())
	}
	s.view.Refresh()
}

func (s *Session) printStatus() {
	t := s.table
	s.view.WriteLine(fmt.Sprintf("Game: %s, deal #%d, pot: %d, ante: %d",
		t.GameName(), t.Deal(), t.Pot(), t.Ante()))
	for _, p := range t.AllPlayers() {
		s.view.WriteLine(fmt.Sprintf("- %s: %d chips, bet %d, %s (%s)",
			p.Name, p.Money, p.CurrentBet, p.Status, p.Type))
	}
	s.view.Refresh()
}

func (s *Session) printCards() {
	t := s.table
	p := t.CurrentPlayer()
	if p == nil {
		return
	}
	s.view.WriteLine("Your hand:")
	for _, hc := range p.Hand {
		line := "- " + hc.Card.String()
		if !hc.FaceDown {
			line += " (up)"
		}
		if hc.Discarded {
			line += " (discarded)"
		}
		s.view.WriteLine(line)
	}
	if common := t.CommonCards(); len(common) > 0 {
		s.view.WriteLine("Common cards:")
		for _, c := range common {
			s.view.WriteLine("- " + c.String())
		}
	}
	if up := t.UpCards(); len(up) > 0 {
		s.view.WriteLine("Showing:")
		for _, uc := range up {
			s.view.WriteLine(fmt.Sprintf("- %s: %s", uc.Player.Name, uc.Card))
		}
	}
	s.view.Refresh()
}

var helpTexts = map[string]string{
	"ante":    "ante: pay the ante to enter the deal.",
	"bet":     "bet <amount|all>: raise your bet to the amount, at least the table minimum.",
	"check":   "check: match the highest bet, paying the difference.",
	"fold":    "fold: give up this deal and any chips already bet.",
	"discard": "discard <card>: mark a card for replacement, e.g. discard ah for the ace of hearts.",
	"next":    "next: take the round's cards (deal or draw) and pass the turn.",
	"status":  "status: show the pot, the ante and every player's chips.",
	"cards":   "cards: show your hand, the common cards and everything face up.",
	"out":     "out: leave the game for good, keeping your chips.",
	"quit":    "quit: end the session.",
	"help":    "help [command]: this text.",
}

func (s *Session) printHelp(topic string) {
	if topic != "" {
		if text, ok := helpTexts[topic]; ok {
			s.writeLine(text)
			return
		}
		s.writeLine(fmt.Sprintf("No help for %q.", topic))
		return
	}
	s.view.WriteLine("Commands: ante, bet, check, fold, discard, next, status, cards, out, help, quit.")
	s.view.WriteLine("Right now you can use: " +
		strings.Join(s.table.PossibleActions(s.table.Round()), " "))
	s.view.Refresh()
}

func (s *Session) promptGameChoice() {
	s.writeLine("Choose a game: " + strings.Join(s.set.Names(), ", "))
}

func (s *Session) complain(err error) {
	switch {
	case errors.Is(err, game.ErrWrongRound):
		s.writeLine("You cannot do that now. Possible actions are: " +
			strings.Join(s.table.PossibleActions(s.table.Round()), " "))
	case errors.Is(err, game.ErrCheckOnly):
		s.writeLine("Betting is closed for this round, check or fold.")
	case errors.Is(err, game.ErrBadBet):
		s.writeLine(fmt.Sprintf("Bad bet: the minimum is %d. Use \"bet all\" to go all in.",
			s.table.CurrentMinBettable()))
	default:
		s.writeLine(err.Error())
	}
}

func (s *Session) writeLine(line string) {
	s.view.WriteLine(line)
	s.view.Refresh()
}
