package main

import (
	"fmt"
	"strings"

	"github.com/cardfelt/cardfelt/internal/deck"
	"github.com/cardfelt/cardfelt/internal/evaluator"
)

type EvalCmd struct {
	Hand []string `arg:"" help:"Cards as face+suit tokens, e.g. ah kh qh jh th"`
	Vs   string   `help:"A second hand to compare against, e.g. 'as ks qs js 9s'"`
}

func (c *EvalCmd) Run() error {
	hand, err := deck.ParseCards(strings.Join(c.Hand, " "))
	if err != nil {
		return err
	}
	best := evaluator.Evaluate(hand)
	fmt.Printf("%s: %s\n", formatCards(hand), best.Category)
	fmt.Printf("  made with %s\n", formatCards(best.Cards))

	if c.Vs == "" {
		return nil
	}
	other, err := deck.ParseCards(c.Vs)
	if err != nil {
		return err
	}
	otherBest := evaluator.Evaluate(other)
	fmt.Printf("%s: %s\n", formatCards(other), otherBest.Category)
	fmt.Printf("  made with %s\n", formatCards(otherBest.Cards))

	switch evaluator.Showdown([][]deck.Card{hand, other}) {
	case 0:
		fmt.Println("the first hand wins")
	case 1:
		fmt.Println("the second hand wins")
	default:
		fmt.Println("draw")
	}
	return nil
}

func formatCards(cards []deck.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
