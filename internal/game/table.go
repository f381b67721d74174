package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Table owns the shared state of a game: seating, the draw pile, the discard
// pile, and the pot. Only the round coordinator mutates it.
type Table struct {
	players  []*Player // non-dealer seats, in turn order
	dealer   *Player   // acts after every player
	deck     *deck.Deck
	discards []deck.Card
	pot      map[*Player]*Bet
	active   *Player // whose turn is being shown, for display only

	logger *log.Logger
}

// NewTable seats the dealer at a table with the given draw pile.
func NewTable(dealer *Player, d *deck.Deck, logger *log.Logger) *Table {
	return &Table{
		dealer: dealer,
		deck:   d,
		pot:    make(map[*Player]*Bet),
		logger: logger,
	}
}

// Seat adds a player ahead of the dealer in turn order.
func (t *Table) Seat(p *Player) {
	t.players = append(t.players, p)
	t.logger.Info("player seated", "player", p.Name, "seats", len(t.players))
}

// Remove takes a player off the table. Removing someone who is not seated is
// a programming error, reported as ErrNotSeated.
func (t *Table) Remove(p *Player) error {
	for i, seated := range t.players {
		if seated == p {
			t.players = append(t.players[:i], t.players[i+1:]...)
			t.logger.Info("player removed", "player", p.Name, "seats", len(t.players))
			return nil
		}
	}
	return ErrNotSeated
}

// Players returns the non-dealer participants in turn order.
func (t *Table) Players() []*Player {
	return t.players
}

// Dealer returns the house participant.
func (t *Table) Dealer() *Player {
	return t.dealer
}

// Participants returns every hand-holder at the table, dealer last.
func (t *Table) Participants() []*Player {
	all := make([]*Player, 0, len(t.players)+1)
	all = append(all, t.players...)
	return append(all, t.dealer)
}

// SetActive records whose turn is being displayed.
func (t *Table) SetActive(p *Player) {
	t.active = p
}

// Active returns the participant whose turn is being displayed, if any.
func (t *Table) Active() *Player {
	return t.active
}

// Draw takes the top card of the deck. When the deck is empty it first
// reclaims the discard pile and shuffles; it fails with deck.ErrEmptyDeck
// only when deck and discards are both exhausted.
func (t *Table) Draw() (deck.Card, error) {
	if t.deck.IsEmpty() && len(t.discards) > 0 {
		t.logger.Info("deck empty, reshuffling discards", "discards", len(t.discards))
		for _, c := range t.discards {
			t.deck.Add(c)
		}
		t.discards = t.discards[:0]
		t.deck.Shuffle()
	}
	return t.deck.Deal()
}

// DealTo draws a card into the player's hand with the given visibility.
func (t *Table) DealTo(p *Player, faceUp bool) error {
	card, err := t.Draw()
	if err != nil {
		return err
	}
	p.Draw(card, faceUp)
	return nil
}

// DiscardHand moves a participant's hand to the discard pile, where every
// card is public.
func (t *Table) DiscardHand(p *Player) {
	t.discards = append(t.discards, p.DiscardHand()...)
}

// Discards returns the discard pile, oldest first.
func (t *Table) Discards() []deck.Card {
	return t.discards
}

// PlaceBet records a participant's wager in the pot.
func (t *Table) PlaceBet(p *Player, bet *Bet) {
	t.pot[p] = bet
}

// BetFor returns the participant's wager this round, nil when sitting out.
func (t *Table) BetFor(p *Player) *Bet {
	return t.pot[p]
}

// ClearPot empties the pot after settlement.
func (t *Table) ClearPot() {
	t.pot = make(map[*Player]*Bet)
}

// CardCount returns the number of cards across deck, discards, and every
// hand. For a single standard deck this is invariantly 52.
func (t *Table) CardCount() int {
	n := t.deck.Len() + len(t.discards)
	for _, p := range t.Participants() {
		n += len(p.Hand)
	}
	return n
}
