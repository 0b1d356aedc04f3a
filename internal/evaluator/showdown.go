package evaluator

import "github.com/cardfelt/cardfelt/internal/deck"

// Showdown compares the hands of every player still contesting the pot and
// returns the index of the single winner, or -1 to signal a split pot.
//
// Ties at the category level are broken by iterative high-card elimination,
// first over the cards that constitute each contestant's best-hand category,
// then over the rest of each contestant's hand (the kickers). Exhausting
// both pools without a unique survivor is a draw.
func Showdown(hands [][]deck.Card) int {
	if len(hands) == 0 {
		return -1
	}
	if len(hands) == 1 {
		return 0
	}

	best := make([]BestHand, len(hands))
	top := best[0].Category
	for i, h := range hands {
		best[i] = Evaluate(h)
		if best[i].Category > top {
			top = best[i].Category
		}
	}

	var survivors []int
	for i := range hands {
		if best[i].Category == top {
			survivors = append(survivors, i)
		}
	}
	if len(survivors) == 1 {
		return survivors[0]
	}

	// Category-defining cards first.
	pools := make(map[int][]deck.Card, len(survivors))
	for _, i := range survivors {
		pools[i] = append([]deck.Card{}, best[i].Cards...)
	}
	winner, survivors := eliminate(survivors, pools)
	if winner >= 0 {
		return winner
	}

	// Then the kickers: the full hand minus the category cards already used.
	pools = make(map[int][]deck.Card, len(survivors))
	for _, i := range survivors {
		pools[i] = removeCards(hands[i], best[i].Cards)
	}
	winner, _ = eliminate(survivors, pools)
	return winner
}

// eliminate repeatedly finds the single highest card among the remaining
// contestants' pools. A contestant holding the only card of that rank wins;
// otherwise contestants whose top card is strictly lower (or whose pool is
// empty) are dropped, one card of the matched rank is stripped from each
// remaining pool, and the process repeats until either one contestant is
// left or every pool is exhausted.
func eliminate(contestants []int, pools map[int][]deck.Card) (int, []int) {
	for {
		bestFace := deck.Face(-1)
		for _, i := range contestants {
			if len(pools[i]) == 0 {
				continue
			}
			if f := HighestCard(pools[i]).Face; f > bestFace {
				bestFace = f
			}
		}
		if bestFace < deck.Two {
			return -1, contestants // all pools exhausted
		}

		var holders []int
		for _, i := range contestants {
			if len(pools[i]) > 0 && HighestCard(pools[i]).Face == bestFace {
				holders = append(holders, i)
			}
		}
		if len(holders) == 1 {
			return holders[0], holders
		}
		for _, i := range holders {
			pools[i] = removeOneOfFace(pools[i], bestFace)
		}
		contestants = holders
	}
}

// removeCards returns hand minus one occurrence of each card in used,
// matching by exact card identity.
func removeCards(hand, used []deck.Card) []deck.Card {
	out := append([]deck.Card{}, hand...)
	for _, u := range used {
		for i, c := range out {
			if c == u {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}

func removeOneOfFace(cards []deck.Card, face deck.Face) []deck.Card {
	for i, c := range cards {
		if c.Face == face {
			return append(cards[:i], cards[i+1:]...)
		}
	}
	return cards
}
