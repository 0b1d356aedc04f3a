// Package tui is the terminal front end: a scrollable game log, a sidebar
// with the table state and a single input line. The model doubles as the
// game's display; everything the engine narrates lands in the log pane.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cardfelt/cardfelt/internal/game"
	"github.com/cardfelt/cardfelt/internal/rules"
	"github.com/cardfelt/cardfelt/internal/session"
)

// Model is the Bubble Tea model for one interactive game. It implements
// game.View: the session and table write lines into the log pane through
// it. Input handling is synchronous; a submitted line runs the whole chain
// of AI turns before the next frame renders.
type Model struct {
	session *session.Session
	logger  *log.Logger

	logViewport viewport.Model
	input       textinput.Model

	gameLog     []string
	focusedPane int // 0 = log, 1 = input
	quitting    bool

	width       int
	height      int
	initialized bool
}

// New creates the model and starts the setup dialogue
func New(logger *log.Logger, rng *rand.Rand, set *rules.Set) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Type a command, or help"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(focusBorderColor).Bold(true)
	ti.Prompt = "> "

	m := &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
	}
	m.session = session.New(m, logger, rng, set)
	return m
}

// WriteLine appends one line to the game log (game.View)
func (m *Model) WriteLine(s string) {
	m.gameLog = append(m.gameLog, s)
}

// Refresh pushes the accumulated log into the viewport and scrolls to the
// bottom (game.View).
func (m *Model) Refresh() {
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				line := m.input.Value()
				m.input.SetValue("")
				if m.session.Interpret(line) {
					m.quitting = true
					return m, tea.Sequence(tea.ClearScreen, tea.Quit)
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the three panes: log, sidebar, input
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	inputContent := m.renderInputPane()
	inputHeight := lipgloss.Height(inputContent)
	inputWidth := max(m.width-2, 1)

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(paneBorderColor).
		Width(inputWidth)
	if m.focusedPane == 1 {
		inputStyle = inputStyle.BorderForeground(focusBorderColor)
	}
	inputPane := inputStyle.Render(inputContent)

	sidebarContent := m.renderSidebar()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 25)
	paneHeight := max(m.height-inputHeight-6, 1)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(paneBorderColor).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(paneBorderColor).
		Width(logWidth).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(focusBorderColor)
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, inputPane)
}

func (m *Model) renderSidebar() string {
	var content strings.Builder
	t := m.session.Table()

	if m.session.Stage() != session.Playing {
		content.WriteString(sidebarHeaderStyle.Render("Setting up..."))
		return content.String()
	}

	content.WriteString(potStyle.Render(fmt.Sprintf("Pot: %d", t.Pot())))
	content.WriteString("  ")
	content.WriteString(potStyle.Render(fmt.Sprintf("Ante: %d", t.Ante())))
	content.WriteString("\n\n")

	content.WriteString(sidebarHeaderStyle.Render("Players:"))
	content.WriteString("\n")
	current := t.CurrentPlayer()
	for _, p := range t.AllPlayers() {
		marker := "  "
		if p == current {
			marker = "> "
		}
		content.WriteString(fmt.Sprintf("%s%s: %d (%s)\n", marker, p.Name, p.Money, p.Status))
	}

	if current != nil && current.Type == game.Human && len(current.Hand) > 0 {
		content.WriteString("\n")
		content.WriteString(sidebarHeaderStyle.Render("Your hand:"))
		content.WriteString("\n")
		var cards []string
		for _, hc := range current.Hand {
			s := hc.Card.String()
			if hc.IsRed() {
				s = redCardStyle.Render(s)
			} else {
				s = blackCardStyle.Render(s)
			}
			if hc.Discarded {
				s = dimStyle.Render(hc.Card.String())
			}
			cards = append(cards, s)
		}
		content.WriteString("  " + strings.Join(cards, " "))
		content.WriteString("\n")
	}

	return content.String()
}

func (m *Model) renderInputPane() string {
	var content strings.Builder
	content.WriteString(m.input.View())
	content.WriteString("\n")
	if m.focusedPane == 0 {
		content.WriteString(dimStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn, Tab to input"))
	} else {
		content.WriteString(dimStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}
	return content.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
