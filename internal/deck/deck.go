package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyDeck is returned when a deal is requested and no cards remain.
var ErrEmptyDeck = errors.New("deal from empty deck")

// Deck is a draw pile of playing cards. The top of the deck is the end of
// the slice, so returned discards stack below the cards already waiting.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck using the provided rng for shuffles.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// Empty creates a deck with no cards, used when rebuilding from discards.
func Empty(rng *rand.Rand) *Deck {
	return &Deck{cards: make([]Card, 0, 52), rng: rng}
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Add places a card on top of the deck
func (d *Deck) Add(card Card) {
	d.cards = append(d.cards, card)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}
