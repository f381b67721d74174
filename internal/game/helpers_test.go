package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// scriptUI feeds canned answers to prompts and captures narration.
type scriptUI struct {
	names   []string
	bets    []int
	choices []string

	output []string
}

func (u *scriptUI) PromptName() (string, error) {
	if len(u.names) == 0 {
		return "", io.EOF
	}
	name := u.names[0]
	u.names = u.names[1:]
	return name, nil
}

func (u *scriptUI) PromptBetAmount(string) (int, error) {
	if len(u.bets) == 0 {
		return 0, io.EOF
	}
	bet := u.bets[0]
	u.bets = u.bets[1:]
	return bet, nil
}

func (u *scriptUI) PromptChoice(_ string, options []string) (string, error) {
	if len(u.choices) == 0 {
		return "", io.EOF
	}
	choice := u.choices[0]
	u.choices = u.choices[1:]
	for _, opt := range options {
		if opt == choice {
			return choice, nil
		}
	}
	return "", fmt.Errorf("scripted choice %q not in %v", choice, options)
}

func (u *scriptUI) RenderHand(hand Hand, _ bool) string {
	parts := make([]string, len(hand))
	for i, hc := range hand {
		parts[i] = hc.Card.String()
	}
	return strings.Join(parts, " ")
}

func (u *scriptUI) Printf(format string, args ...any) {
	u.output = append(u.output, fmt.Sprintf(format, args...))
}

func (u *scriptUI) sawLine(substr string) bool {
	for _, line := range u.output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// card builds a spades card of the given rank; suit is irrelevant to value.
func card(rank deck.Rank) deck.Card {
	return deck.NewCard(deck.Spades, rank)
}

// handOf builds a fully revealed hand from ranks.
func handOf(ranks ...deck.Rank) Hand {
	h := make(Hand, len(ranks))
	for i, r := range ranks {
		h[i] = HeldCard{Card: card(r), FaceUp: true}
	}
	return h
}

// stackedDeck builds a deck that deals the given cards in argument order.
func stackedDeck(cards ...deck.Card) *deck.Deck {
	d := deck.Empty(randutil.New(1))
	for i := len(cards) - 1; i >= 0; i-- {
		d.Add(cards[i])
	}
	return d
}

// testLogger discards log output.
func testLogger() *log.Logger {
	return log.New(io.Discard)
}
