package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardfelt/cardfelt/internal/game"
	"github.com/cardfelt/cardfelt/internal/randutil"
	"github.com/cardfelt/cardfelt/internal/rules"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		line     string
		expected Intent
		bad      bool
	}{
		{line: "ante", expected: AnteIntent{}},
		{line: "  ANTE  ", expected: AnteIntent{}},
		{line: "bet 20", expected: BetIntent{Amount: "20"}},
		{line: "bet all", expected: BetIntent{Amount: "all"}},
		{line: "bet", bad: true},
		{line: "check", expected: CheckIntent{}},
		{line: "fold", expected: FoldIntent{}},
		{line: "discard ah", expected: DiscardIntent{Card: "ah"}},
		{line: "discard", bad: true},
		{line: "next", expected: NextIntent{}},
		{line: "status", expected: StatusIntent{}},
		{line: "cards", expected: CardsIntent{}},
		{line: "out", expected: OutIntent{}},
		{line: "quit", expected: QuitIntent{}},
		{line: "exit", expected: QuitIntent{}},
		{line: "help", expected: HelpIntent{}},
		{line: "help bet", expected: HelpIntent{Topic: "bet"}},
		{line: "", bad: true},
		{line: "raise 20", bad: true},
	}
	for _, tt := range tests {
		intent, err := ParseIntent(tt.line)
		if tt.bad {
			assert.Error(t, err, "line %q", tt.line)
			continue
		}
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.expected, intent, "line %q", tt.line)
	}
}

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s := New(game.WriterView{W: &buf}, nil, randutil.New(1), rules.Default())
	return s, &buf
}

func TestSetupDialogue(t *testing.T) {
	s, buf := newTestSession(t)
	assert.Contains(t, buf.String(), "Choose a game")
	assert.Equal(t, GameChoice, s.Stage())

	// A bad choice repeats the prompt without advancing.
	require.False(t, s.Interpret("omaha"))
	assert.Equal(t, GameChoice, s.Stage())
	assert.Contains(t, buf.String(), `No game called "omaha"`)

	require.False(t, s.Interpret("five card draw"))
	assert.Equal(t, NumberOfPlayers, s.Stage())

	require.False(t, s.Interpret("99"))
	assert.Equal(t, NumberOfPlayers, s.Stage())

	require.False(t, s.Interpret("2"))
	assert.Equal(t, PlayerTypes, s.Stage())

	require.False(t, s.Interpret("hx"))
	assert.Equal(t, PlayerTypes, s.Stage())

	require.False(t, s.Interpret("hh"))
	assert.Equal(t, PlayerNames, s.Stage())

	require.False(t, s.Interpret("alice bob"))
	assert.Equal(t, AnteAmount, s.Stage())

	require.False(t, s.Interpret("")) // keep the default ante
	assert.Equal(t, AnteDoubles, s.Stage())

	require.False(t, s.Interpret("no"))
	assert.Equal(t, Playing, s.Stage())
	assert.Contains(t, buf.String(), "Game starting.")
	assert.Contains(t, buf.String(), "Deal #1")
	assert.Equal(t, game.Ante, s.Table().Round())
	assert.Equal(t, "alice", s.Table().CurrentPlayer().Name)
}

func TestQuitDuringSetup(t *testing.T) {
	s, _ := newTestSession(t)
	assert.True(t, s.Interpret("quit"))
	assert.Equal(t, Finished, s.Stage())
}

func setupHeadsUp(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	s, buf := newTestSession(t)
	for _, line := range []string{"five card draw", "2", "hh", "alice bob", "", "no"} {
		require.False(t, s.Interpret(line))
	}
	require.Equal(t, Playing, s.Stage())
	return s, buf
}

func TestPlayingCommands(t *testing.T) {
	s, buf := setupHeadsUp(t)
	table := s.Table()

	// Wrong command for the round is rejected with guidance, no advance.
	require.False(t, s.Interpret("check"))
	assert.Contains(t, buf.String(), "You cannot do that now")
	assert.Equal(t, "alice", table.CurrentPlayer().Name)

	// Gibberish points at help.
	require.False(t, s.Interpret("shove"))
	assert.Contains(t, buf.String(), "Type help for the command list")

	require.False(t, s.Interpret("help"))
	assert.Contains(t, buf.String(), "Commands: ante, bet, check")
	require.False(t, s.Interpret("help bet"))
	assert.Contains(t, buf.String(), "bet <amount|all>")

	require.False(t, s.Interpret("status"))
	assert.Contains(t, buf.String(), "alice: 100 chips")
	assert.Contains(t, buf.String(), "bob: 100 chips")

	// Both antes; the game moves into the dealing rounds.
	buf.Reset()
	require.False(t, s.Interpret("ante"))
	assert.Contains(t, buf.String(), "You place 5 as ante.")
	assert.Equal(t, "bob", table.CurrentPlayer().Name)
	require.False(t, s.Interpret("ante"))
	assert.Equal(t, game.DealDown, table.Round())

	// Five deal rounds, two players each.
	buf.Reset()
	for i := 0; i < 10; i++ {
		require.False(t, s.Interpret("next"))
	}
	assert.Contains(t, buf.String(), "You receive")
	assert.Equal(t, game.Bet, table.Round())
	alice := table.AllPlayers()[0]
	assert.Len(t, alice.Hand, 5)

	require.False(t, s.Interpret("cards"))
	assert.Contains(t, buf.String(), "Your hand:")

	// A malformed bet is refused with the table minimum.
	require.False(t, s.Interpret("bet 1"))
	assert.Contains(t, buf.String(), "Bad bet: the minimum is 5")
	assert.Equal(t, "alice", table.CurrentPlayer().Name)

	require.False(t, s.Interpret("bet 10"))
	assert.Contains(t, buf.String(), "Your bet stands at 10.")
	assert.Equal(t, "bob", table.CurrentPlayer().Name)
	require.False(t, s.Interpret("check"))
	assert.Contains(t, buf.String(), "You pay 10 to stay in.")
	assert.Equal(t, game.MayDrawDown, table.Round())

	// Discard one card, draw its replacement, pass the turn.
	buf.Reset()
	victim := alice.Hand[0].Card
	require.False(t, s.Interpret("discard "+victim.Code()))
	assert.Contains(t, buf.String(), "Discarded.")
	require.False(t, s.Interpret("next"))
	assert.Contains(t, buf.String(), "You draw:")
	assert.Len(t, alice.Hand, 5)
	assert.Equal(t, "bob", table.CurrentPlayer().Name)
}

func TestQuitWhilePlaying(t *testing.T) {
	s, _ := setupHeadsUp(t)
	assert.True(t, s.Interpret("quit"))
	assert.Equal(t, Finished, s.Stage())
}

func TestOutEndsHeadsUpGame(t *testing.T) {
	s, buf := setupHeadsUp(t)
	// Alice leaves at the ante; bob is the last one standing and the
	// session ends with the game.
	done := s.Interpret("out")
	assert.True(t, done)
	assert.Contains(t, buf.String(), "You leave the game. Net gains: 0.")
	assert.Contains(t, buf.String(), "The game is finished. Winner: bob")
	assert.Equal(t, Finished, s.Stage())
	assert.True(t, s.Table().GameOver())
}

func TestDrawWithoutDiscardsDrawsNothing(t *testing.T) {
	s, buf := setupHeadsUp(t)
	script := []string{"ante", "ante"}
	for i := 0; i < 10; i++ {
		script = append(script, "next")
	}
	script = append(script, "check", "check")
	for _, line := range script {
		require.False(t, s.Interpret(line), "line %q", line)
	}
	require.Equal(t, game.MayDrawDown, s.Table().Round())

	buf.Reset()
	require.False(t, s.Interpret("next"))
	assert.Contains(t, buf.String(), "No cards drawn.")
}

func TestHelpListsCurrentActions(t *testing.T) {
	s, buf := setupHeadsUp(t)
	require.False(t, s.Interpret("help"))
	out := buf.String()
	assert.Contains(t, out, "Right now you can use: "+
		strings.Join(s.Table().PossibleActions(game.Ante), " "))
}
