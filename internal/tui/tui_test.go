package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardfelt/cardfelt/internal/randutil"
	"github.com/cardfelt/cardfelt/internal/rules"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := log.New(io.Discard)
	return New(logger, randutil.New(1), rules.Default())
}

func TestNewModelGreets(t *testing.T) {
	m := newTestModel(t)
	require.NotEmpty(t, m.gameLog)
	assert.Contains(t, m.gameLog[0], "Welcome")
	joined := ""
	for _, line := range m.gameLog {
		joined += line + "\n"
	}
	assert.Contains(t, joined, "Choose a game")
}

func TestViewBeforeSizing(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "Loading...", m.View())
}

func TestViewAfterSizing(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(*Model)
	view := m.View()
	assert.NotEmpty(t, view)
	assert.NotEqual(t, "Loading...", view)
	assert.Contains(t, view, "Setting up...")
}

func TestEnterFeedsTheSession(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("no such game")
	before := len(m.gameLog)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*Model)

	assert.Greater(t, len(m.gameLog), before, "a rejected choice should be narrated")
	assert.Empty(t, m.input.Value(), "the input line is cleared after submit")
	assert.False(t, m.quitting)
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(*Model)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
