package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/randutil"
)

func newTestTable(d *deck.Deck) (*Table, *Player) {
	dealer := NewPlayer("Dealer", nil, NewHouseAgent())
	return NewTable(dealer, d, testLogger()), dealer
}

func TestSeatAndRemove(t *testing.T) {
	t.Parallel()

	table, dealer := newTestTable(deck.New(randutil.New(1)))
	alice := NewPlayer("Alice", NewBankroll(), NewHouseAgent())
	bob := NewPlayer("Bob", NewBankroll(), NewHouseAgent())

	table.Seat(alice)
	table.Seat(bob)
	assert.Equal(t, []*Player{alice, bob}, table.Players())
	assert.Equal(t, []*Player{alice, bob, dealer}, table.Participants(), "dealer acts last")

	require.NoError(t, table.Remove(alice))
	assert.Equal(t, []*Player{bob}, table.Players())

	err := table.Remove(alice)
	assert.True(t, errors.Is(err, ErrNotSeated))
}

func TestDrawReclaimsDiscards(t *testing.T) {
	t.Parallel()

	table, dealer := newTestTable(stackedDeck(card(deck.Ace), card(deck.King), card(deck.Queen)))

	// Play all three cards into the dealer's hand, then discard them.
	for i := 0; i < 3; i++ {
		require.NoError(t, table.DealTo(dealer, true))
	}
	table.DiscardHand(dealer)
	require.Len(t, table.Discards(), 3)

	// Drawing from the empty deck reclaims and shuffles the discards; the
	// deck afterwards holds one fewer card than the discard pile held.
	c, err := table.Draw()
	require.NoError(t, err)
	assert.Contains(t, []deck.Card{card(deck.Ace), card(deck.King), card(deck.Queen)}, c)
	assert.Empty(t, table.Discards())
	assert.Equal(t, 2, table.CardCount(), "deck holds prior discard count minus the drawn card")
}

func TestDrawFailsWhenDeckAndDiscardsEmpty(t *testing.T) {
	t.Parallel()

	table, _ := newTestTable(deck.Empty(randutil.New(1)))
	_, err := table.Draw()
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
}

func TestCardConservation(t *testing.T) {
	t.Parallel()

	table, dealer := newTestTable(deck.New(randutil.New(3)))
	alice := NewPlayer("Alice", NewBankroll(), NewHouseAgent())
	table.Seat(alice)

	assert.Equal(t, 52, table.CardCount())

	// Deal an opening pattern and a few hits.
	for _, p := range []*Player{alice, dealer} {
		require.NoError(t, table.DealTo(p, false))
		require.NoError(t, table.DealTo(p, true))
	}
	require.NoError(t, table.DealTo(alice, true))
	assert.Equal(t, 52, table.CardCount())

	// Discarding keeps every card on the table.
	table.DiscardHand(alice)
	table.DiscardHand(dealer)
	assert.Equal(t, 52, table.CardCount())
	assert.Len(t, table.Discards(), 5)
}

func TestDealToSetsVisibility(t *testing.T) {
	t.Parallel()

	table, dealer := newTestTable(stackedDeck(card(deck.Ace), card(deck.King)))

	require.NoError(t, table.DealTo(dealer, false))
	require.NoError(t, table.DealTo(dealer, true))

	require.Len(t, dealer.Hand, 2)
	assert.False(t, dealer.Hand[0].FaceUp, "hole card stays hidden")
	assert.True(t, dealer.Hand[1].FaceUp)
}

func TestPotLifecycle(t *testing.T) {
	t.Parallel()

	chips := NewCurrency("chip", "")
	table, _ := newTestTable(deck.New(randutil.New(1)))
	alice := NewPlayer("Alice", NewBankroll(), NewHouseAgent())
	table.Seat(alice)

	assert.Nil(t, table.BetFor(alice))

	bet := &Bet{Currency: chips, Amount: 10, Kind: BetStandard}
	table.PlaceBet(alice, bet)
	assert.Equal(t, bet, table.BetFor(alice))

	table.ClearPot()
	assert.Nil(t, table.BetFor(alice))
}
