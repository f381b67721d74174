package game

import (
	"github.com/lox/blackjack-cli/internal/deck"
)

// blackjackTarget is the bust threshold; a hand above it is worthless.
const blackjackTarget = 21

// HeldCard is a card in a participant's hand together with its table
// visibility. Identity is immutable; only dealing and discarding flip FaceUp.
type HeldCard struct {
	Card   deck.Card
	FaceUp bool
}

// Hand is an ordered sequence of held cards.
type Hand []HeldCard

// Value returns the best blackjack total for the hand. Cards sum at their
// base values (aces low); when the low total is 11 or less and the hand
// holds an ace, exactly one ace is promoted to 11. Promoting a second ace
// could never help: it either busts the hand or repeats a reachable total.
// An empty hand evaluates to 0.
func (h Hand) Value() int {
	total := 0
	for _, hc := range h {
		total += hc.Card.BaseValue()
	}
	if total <= blackjackTarget-10 && h.HasAce() {
		total += 10
	}
	return total
}

// HasAce reports whether the hand holds at least one ace.
func (h Hand) HasAce() bool {
	for _, hc := range h {
		if hc.Card.IsAce() {
			return true
		}
	}
	return false
}

// IsSoft reports whether the hand's value counts an ace as 11.
func (h Hand) IsSoft() bool {
	low := 0
	for _, hc := range h {
		low += hc.Card.BaseValue()
	}
	return h.HasAce() && low <= blackjackTarget-10
}

// IsNatural reports whether the hand is a natural blackjack: exactly two
// cards totalling 21.
func (h Hand) IsNatural() bool {
	return len(h) == 2 && h.Value() == blackjackTarget
}

// IsBusted reports whether the hand's best value exceeds 21.
func (h Hand) IsBusted() bool {
	return h.Value() > blackjackTarget
}

// Cards returns the bare cards in hand order.
func (h Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h))
	for i, hc := range h {
		cards[i] = hc.Card
	}
	return cards
}

// Reveal turns every card in the hand face up.
func (h Hand) Reveal() {
	for i := range h {
		h[i].FaceUp = true
	}
}
