package game

import "fmt"

// Round tags one configured phase within a deal. A variant's ordered round
// list is replayed in full every deal.
type Round int

const (
	Ante Round = iota
	Bet
	DealDown
	DealUp
	DealCommon
	MayDrawDown
	MayDrawUp
	Showdown
)

// String returns the configuration token for a round
func (r Round) String() string {
	switch r {
	case Ante:
		return "ante"
	case Bet:
		return "bet"
	case DealDown:
		return "dealDown"
	case DealUp:
		return "dealUp"
	case DealCommon:
		return "dealCommon"
	case MayDrawDown:
		return "mayDrawDown"
	case MayDrawUp:
		return "mayDrawUp"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// ParseRound parses a configuration round token
func ParseRound(s string) (Round, error) {
	switch s {
	case "ante":
		return Ante, nil
	case "bet":
		return Bet, nil
	case "dealDown":
		return DealDown, nil
	case "dealUp":
		return DealUp, nil
	case "dealCommon":
		return DealCommon, nil
	case "mayDrawDown":
		return MayDrawDown, nil
	case "mayDrawUp":
		return MayDrawUp, nil
	case "showdown":
		return Showdown, nil
	default:
		return 0, fmt.Errorf("unknown round %q", s)
	}
}

// IsDraw reports whether the round lets the player discard and redraw
func (r Round) IsDraw() bool {
	return r == MayDrawDown || r == MayDrawUp
}

// Variant is the pre-parsed configuration of one named poker game: player
// bounds, money parameters and the ordered round sequence.
type Variant struct {
	Name          string
	MinPlayers    int
	MaxPlayers    int
	StartingMoney int
	Ante          int
	AnteDoubles   bool
	Rounds        []Round
}
