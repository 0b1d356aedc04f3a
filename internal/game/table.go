package game

import (
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cardfelt/cardfelt/internal/deck"
)

// Table owns the whole state of one running game: the players, the pot, the
// draw pile, the configured round sequence and the turn pointer. It is the
// only mutator of that state; the evaluator and showdown resolver are pure
// functions it calls at terminal points.
//
// Everything is single-threaded and synchronous. Exactly one player acts at
// a time; a human turn pauses the game simply by returning control to the
// caller, which later re-invokes the table with the player's choice.
type Table struct {
	variant Variant
	rounds  []Round

	players         []*Player
	numberOfPlayers int
	currentPlayer   *Player

	deal         int
	pot          int
	ante         int
	baseMoney    int
	anteDoubles  bool
	currentRound int
	commonCards  []deck.Card
	pile         *deck.Deck
	checkOnly    bool

	gameOver bool
	winner   *Player

	rng    *rand.Rand
	view   View
	logger *log.Logger
}

// NewTable creates an empty table bound to a view and an RNG. A variant and
// players must be configured before the game starts.
func NewTable(view View, logger *log.Logger, rng *rand.Rand) *Table {
	if view == nil {
		view = NopView{}
	}
	return &Table{
		view:   view,
		logger: logger,
		rng:    rng,
	}
}

// SetGame binds the table to a game variant, resetting the round sequence
func (t *Table) SetGame(v Variant) {
	t.variant = v
	t.rounds = append([]Round{}, v.Rounds...)
	t.baseMoney = v.StartingMoney
	t.ante = v.Ante
	t.anteDoubles = v.AnteDoubles
}

// SetNumberOfPlayers accepts a player count within the variant's bounds
func (t *Table) SetNumberOfPlayers(input string) bool {
	num, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || num < t.variant.MinPlayers || num > t.variant.MaxPlayers {
		return false
	}
	t.numberOfPlayers = num
	return true
}

// SetPlayerTypes creates the seats from a type string, one character per
// player: 'h' for human, 'a' for AI (e.g. "haaa").
func (t *Table) SetPlayerTypes(input string) bool {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if len(normalized) != t.numberOfPlayers {
		return false
	}
	for _, c := range normalized {
		switch c {
		case 'a':
			t.players = append(t.players, NewPlayer(AI, t.baseMoney))
		case 'h':
			t.players = append(t.players, NewPlayer(Human, t.baseMoney))
		default:
			t.players = nil
			return false
		}
	}
	t.currentPlayer = t.players[0]
	return true
}

// SetPlayerNames names each seat from a space-separated list; an empty input
// assigns default names.
func (t *Table) SetPlayerNames(input string) bool {
	normalized := strings.TrimSpace(input)
	if normalized == "" {
		for i, p := range t.players {
			p.Name = "Player " + strconv.Itoa(i)
		}
		return true
	}
	names := strings.Split(normalized, " ")
	if len(names) != len(t.players) {
		return false
	}
	for i, p := range t.players {
		p.Name = names[i]
	}
	return true
}

// SetAnte overrides the variant's base ante; an empty input confirms it.
// The ante must stay below half the starting stack.
func (t *Table) SetAnte(input string) bool {
	normalized := strings.TrimSpace(input)
	if normalized == "" {
		return true
	}
	ante, err := strconv.Atoi(normalized)
	if err != nil || ante <= 0 || ante >= t.baseMoney/2 {
		return false
	}
	t.ante = ante
	return true
}

// SetAnteDoubles overrides whether the ante doubles each deal; an empty
// input confirms the variant default.
func (t *Table) SetAnteDoubles(input string) bool {
	switch strings.TrimSpace(input) {
	case "":
		return true
	case "yes":
		t.anteDoubles = true
		return true
	case "no":
		t.anteDoubles = false
		return true
	default:
		return false
	}
}

// Round returns the rule in effect for the current round
func (t *Table) Round() Round {
	return t.rounds[t.currentRound]
}

// Pot returns the amount of chips currently in the pot
func (t *Table) Pot() int {
	return t.pot
}

// Deal returns the number of the deal in this game, starting at 1
func (t *Table) Deal() int {
	return t.deal
}

// Ante returns the ante to be placed this deal, which is also the minimum
// bet amount.
func (t *Table) Ante() int {
	return t.ante
}

// GameName returns the name of the configured variant
func (t *Table) GameName() string {
	return t.variant.Name
}

// CheckOnly reports whether every active player has already acted once in
// the current betting round, restricting further action to check or fold.
func (t *Table) CheckOnly() bool {
	return t.checkOnly
}

// GameOver reports whether the game has finished
func (t *Table) GameOver() bool {
	return t.gameOver
}

// Winner returns the overall game winner, nil until the game is over
func (t *Table) Winner() *Player {
	return t.winner
}

// CurrentPlayer returns the player whose turn it is
func (t *Table) CurrentPlayer() *Player {
	return t.currentPlayer
}

// CommonCards returns the shared cards visible to all players
func (t *Table) CommonCards() []deck.Card {
	return t.commonCards
}

// AllPlayers returns a copy of the seating list
func (t *Table) AllPlayers() []*Player {
	return append([]*Player{}, t.players...)
}

// OtherPlayers returns every player except the current one
func (t *Table) OtherPlayers() []*Player {
	var others []*Player
	for _, p := range t.players {
		if p != t.currentPlayer {
			others = append(others, p)
		}
	}
	return others
}

// CurrentMaxBet returns the highest bet-to-date placed by any player this
// deal.
func (t *Table) CurrentMaxBet() int {
	maxBet := 0
	for _, p := range t.players {
		if p.CurrentBet > maxBet {
			maxBet = p.CurrentBet
		}
	}
	return maxBet
}

// CurrentMinBettable returns the minimum amount a bet may name right now
func (t *Table) CurrentMinBettable() int {
	min := t.ante
	if m := t.CurrentMaxBet(); m > min {
		min = m
	}
	if min < 0 {
		min = 0
	}
	return min
}

// UpCard pairs a face-up card with the player showing it
type UpCard struct {
	Player *Player
	Card   deck.Card
}

// UpCards returns the face-up cards of every player other than the current
// one, for display.
func (t *Table) UpCards() []UpCard {
	var up []UpCard
	for _, p := range t.OtherPlayers() {
		for _, hc := range p.Hand {
			if !hc.FaceDown {
				up = append(up, UpCard{Player: p, Card: hc.Card})
			}
		}
	}
	return up
}

// PossibleActions lists the commands available in a given round
func (t *Table) PossibleActions(r Round) []string {
	switch r {
	case Ante:
		return []string{"ante", "out", "status"}
	case Bet:
		return []string{"bet", "check", "fold", "out", "cards", "status"}
	case MayDrawDown, MayDrawUp:
		return []string{"discard", "next", "status", "cards"}
	default:
		return []string{"next", "status", "cards"}
	}
}

func (t *Table) playersIn() []*Player {
	var in []*Player
	for _, p := range t.players {
		if p.Status == In {
			in = append(in, p)
		}
	}
	return in
}

func (t *Table) firstIn() *Player {
	for _, p := range t.players {
		if p.Status == In {
			return p
		}
	}
	return nil
}

func (t *Table) firstNotOut() *Player {
	for _, p := range t.players {
		if p.Status != OutOfGame {
			return p
		}
	}
	return nil
}

// nextInAfter finds, in original seating order, the next player after the
// given one who is still in the deal.
func (t *Table) nextInAfter(after *Player) *Player {
	idx := -1
	for i, p := range t.players {
		if p == after {
			idx = i
			break
		}
	}
	for i := idx + 1; i < len(t.players); i++ {
		if t.players[i].Status == In {
			return t.players[i]
		}
	}
	return nil
}

func (t *Table) mustPop() deck.Card {
	c, ok := t.pile.Pop()
	if !ok {
		// Cannot happen with a 52-card deck and the configured variants.
		panic("deck exhausted mid-deal")
	}
	return c
}
