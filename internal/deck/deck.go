package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrInsufficientCards is returned when a deal requests more cards than remain.
var ErrInsufficientCards = errors.New("not enough cards remaining")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// New creates a new shuffled deck with an explicit random source.
// Callers own seeding, so deal sequences are reproducible.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates and rewinds dealing
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the next n cards. The returned slice is a copy,
// so dealt cards stay valid across later shuffles.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, fmt.Errorf("deal %d with %d remaining: %w", n, d.CardsRemaining(), ErrInsufficientCards)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// MustDeal deals n cards and panics if the deck cannot satisfy the request.
// Spot generation deals five cards from a fresh deck, so failure there is a
// programming error rather than a runtime condition.
func (d *Deck) MustDeal(n int) []Card {
	cards, err := d.Deal(n)
	if err != nil {
		panic(err)
	}
	return cards
}

// Reset reshuffles the deck back to a full 52 cards
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of cards left to deal
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
