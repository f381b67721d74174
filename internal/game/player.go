package game

import (
	"github.com/lox/blackjack-cli/internal/deck"
)

// Player is a participant at the table: a hand, an optional bankroll, and an
// injected decision policy. The dealer is a Player whose agent is the house
// rule and whose bankroll may be nil, meaning unlimited funds.
type Player struct {
	Name     string
	Hand     Hand
	Bankroll *Bankroll // nil means unlimited funds (the house)

	agent Agent
}

// NewPlayer creates a player with the given decision agent.
func NewPlayer(name string, bankroll *Bankroll, agent Agent) *Player {
	return &Player{Name: name, Bankroll: bankroll, agent: agent}
}

// Draw appends a card to the player's hand.
func (p *Player) Draw(card deck.Card, faceUp bool) {
	p.Hand = append(p.Hand, HeldCard{Card: card, FaceUp: faceUp})
}

// Play removes the given card from the hand and returns it. Asking for a
// card the hand does not hold is a programming error, reported as
// ErrCardNotInHand.
func (p *Player) Play(card deck.Card) (deck.Card, error) {
	for i, hc := range p.Hand {
		if hc.Card == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return hc.Card, nil
		}
	}
	return deck.Card{}, ErrCardNotInHand
}

// DiscardHand empties the hand and returns the cards that were held.
func (p *Player) DiscardHand() []deck.Card {
	cards := p.Hand.Cards()
	p.Hand = nil
	return cards
}

// MakeBet mints a bet by withdrawing amount from the player's bankroll.
func (p *Player) MakeBet(cur *Currency, amount int, kind BetKind) (*Bet, error) {
	if amount < 0 {
		return nil, ErrNegativeBet
	}
	withdrawn, err := p.Bankroll.Withdraw(cur, amount)
	if err != nil {
		return nil, err
	}
	return &Bet{Currency: cur, Amount: withdrawn, Kind: kind}, nil
}

// DecideBet asks the player's agent for this round's wager. A nil bet with
// no error means the player sits the round out.
func (p *Player) DecideBet(cur *Currency) (*Bet, error) {
	return p.agent.DecideBet(p, cur)
}

// DecideHit asks the player's agent whether to take another card.
func (p *Player) DecideHit() (bool, error) {
	return p.agent.DecideHit(p)
}

// Payout produces amount in the given currency from the player's funds,
// withdrawing when a bankroll is present. A player with no bankroll pays any
// amount without bookkeeping — the unlimited-funds house.
func (p *Player) Payout(cur *Currency, amount int) (int, error) {
	if p.Bankroll == nil {
		return amount, nil
	}
	return p.Bankroll.Withdraw(cur, amount)
}
