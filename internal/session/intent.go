package session

import (
	"fmt"
	"strings"
)

// Intent is one parsed player command. The set is closed; Interpret
// switches over every variant.
type Intent interface {
	isIntent()
}

type (
	// AnteIntent pays the ante
	AnteIntent struct{}
	// BetIntent places a named bet, "all" included
	BetIntent struct{ Amount string }
	// CheckIntent matches the current maximum bet
	CheckIntent struct{}
	// FoldIntent abandons the current deal
	FoldIntent struct{}
	// DiscardIntent marks one hand card for replacement
	DiscardIntent struct{ Card string }
	// NextIntent performs the current round's dealing or drawing and moves on
	NextIntent struct{}
	// StatusIntent prints the table state
	StatusIntent struct{}
	// CardsIntent prints the current player's hand and the visible cards
	CardsIntent struct{}
	// OutIntent leaves the game, keeping the chips won so far
	OutIntent struct{}
	// QuitIntent ends the whole session
	QuitIntent struct{}
	// HelpIntent prints usage, optionally for a single command
	HelpIntent struct{ Topic string }
)

func (AnteIntent) isIntent()    {}
func (BetIntent) isIntent()     {}
func (CheckIntent) isIntent()   {}
func (FoldIntent) isIntent()    {}
func (DiscardIntent) isIntent() {}
func (NextIntent) isIntent()    {}
func (StatusIntent) isIntent()  {}
func (CardsIntent) isIntent()   {}
func (OutIntent) isIntent()     {}
func (QuitIntent) isIntent()    {}
func (HelpIntent) isIntent()    {}

// ParseIntent turns one input line into an Intent. Commands are a single
// word, optionally followed by one argument.
func ParseIntent(line string) (Intent, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	switch fields[0] {
	case "ante":
		return AnteIntent{}, nil
	case "bet":
		if arg == "" {
			return nil, fmt.Errorf("bet needs an amount, or \"all\"")
		}
		return BetIntent{Amount: arg}, nil
	case "check":
		return CheckIntent{}, nil
	case "fold":
		return FoldIntent{}, nil
	case "discard":
		if arg == "" {
			return nil, fmt.Errorf("discard needs a card, e.g. \"discard ah\"")
		}
		return DiscardIntent{Card: arg}, nil
	case "next":
		return NextIntent{}, nil
	case "status":
		return StatusIntent{}, nil
	case "cards":
		return CardsIntent{}, nil
	case "out":
		return OutIntent{}, nil
	case "quit", "exit":
		return QuitIntent{}, nil
	case "help":
		return HelpIntent{Topic: arg}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", fields[0])
	}
}
