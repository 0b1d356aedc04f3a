package deck

import rand "math/rand/v2"

// Deck is a draw pile over the 52 unique cards. It is rebuilt fully shuffled
// at the start of every deal; only "random next card" matters, so cards are
// consumed by popping from the front.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck, shuffled with the provided RNG
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Clubs; suit <= Spades; suit++ {
		for face := Two; face <= Ace; face++ {
			d.cards = append(d.cards, NewCard(face, suit))
		}
	}
	d.Shuffle()
	return d
}

// Shuffle randomizes the order of the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Pop removes and returns the next card. The second return is false when the
// deck is empty; that never happens under the configured variants and callers
// treat it as a fatal invariant violation.
func (d *Deck) Pop() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
