package game

import "strconv"

// autoPlay makes one automatic turn for an AI player in the current round.
// The policy reproduces the house AI: always ante and accept deals, discard
// a random selection on draw rounds, and on betting rounds roll a percentile
// against fixed thresholds (fold under 25, check under 70, all-in over 95,
// otherwise a uniform random raise).
func (t *Table) autoPlay(p *Player) {
	if t.gameOver || p.Type != AI || p.Status != In {
		return
	}
	switch t.Round() {
	case Ante:
		t.placeAnteAI(p)
	case DealDown:
		_, _ = t.DealCardDown()
	case DealUp:
		_, _ = t.DealCardUp()
	case DealCommon:
		_, _ = t.DealCardCommon()
	case MayDrawDown, MayDrawUp:
		t.drawRoundAI(p)
	case Bet:
		t.betRoundAI(p)
	}
}

func (t *Table) placeAnteAI(p *Player) {
	amount, _ := t.PlaceAnte()
	if t.logger != nil {
		t.logger.Debug("ai ante", "player", p.Name, "amount", amount)
	}
}

// drawRoundAI discards a random number of randomly chosen cards, then draws
// the replacements.
func (t *Table) drawRoundAI(p *Player) {
	var discardable []*HandCard
	for _, hc := range p.Hand {
		if !hc.Discarded {
			discardable = append(discardable, hc)
		}
	}
	count := 0
	if len(discardable) > 0 {
		count = t.rng.IntN(len(discardable))
	}
	for i := 0; i < count; i++ {
		j := t.rng.IntN(len(discardable))
		hc := discardable[j]
		discardable = append(discardable[:j], discardable[j+1:]...)
		_ = t.DiscardCard(hc.Code())
	}
	if t.Round() == MayDrawDown {
		_, _ = t.DrawCardsDown()
	} else {
		_, _ = t.DrawCardsUp()
	}
	if t.logger != nil {
		t.logger.Debug("ai draw", "player", p.Name, "discarded", count)
	}
}

func (t *Table) betRoundAI(p *Player) {
	min := t.CurrentMaxBet()
	if t.ante > min {
		min = t.ante
	}
	if p.Money <= min {
		_, _ = t.CheckBet()
		return
	}
	boldness := t.rng.IntN(100)
	switch {
	case boldness < 25:
		_ = t.FoldBet()
	case t.checkOnly:
		_, _ = t.CheckBet()
	case boldness < 70:
		_, _ = t.CheckBet()
	case boldness > 95:
		_, _ = t.PlaceBet("all")
	default:
		max := p.Money
		if min >= max {
			_, _ = t.CheckBet()
			return
		}
		_, _ = t.PlaceBet(strconv.Itoa(t.rng.IntN(max-min) + min))
	}
}
