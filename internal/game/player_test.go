package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

func TestMakeBet(t *testing.T) {
	t.Parallel()

	chips := NewCurrency("chip", "")

	t.Run("mints bet by withdrawal", func(t *testing.T) {
		p := newFundedPlayer("Alice", chips, 50, &scriptUI{})
		bet, err := p.MakeBet(chips, 30, BetStandard)
		require.NoError(t, err)
		assert.Equal(t, 30, bet.Amount)
		assert.Equal(t, chips, bet.Currency)
		assert.Equal(t, 20, p.Bankroll.Balance(chips))
	})

	t.Run("negative bet rejected", func(t *testing.T) {
		p := newFundedPlayer("Alice", chips, 50, &scriptUI{})
		_, err := p.MakeBet(chips, -1, BetStandard)
		assert.True(t, errors.Is(err, ErrNegativeBet))
		assert.Equal(t, 50, p.Bankroll.Balance(chips))
	})

	t.Run("over-bet fails without withdrawal", func(t *testing.T) {
		p := newFundedPlayer("Alice", chips, 50, &scriptUI{})
		_, err := p.MakeBet(chips, 51, BetStandard)
		assert.True(t, errors.Is(err, ErrInsufficientFunds))
		assert.Equal(t, 50, p.Bankroll.Balance(chips))
	})
}

func TestBetString(t *testing.T) {
	t.Parallel()

	chips := NewCurrency("chip", "")
	bet := &Bet{Currency: chips, Amount: 5, Kind: BetStandard}
	assert.Equal(t, "standard bet of 5 chips", bet.String())

	single := &Bet{Currency: chips, Amount: 1, Kind: BetStandard}
	assert.Equal(t, "standard bet of 1 chip", single.String())
}

func TestPlayerPlay(t *testing.T) {
	t.Parallel()

	p := NewPlayer("Alice", nil, NewHouseAgent())
	p.Hand = handOf(deck.Ace, deck.King)

	c, err := p.Play(card(deck.Ace))
	require.NoError(t, err)
	assert.Equal(t, card(deck.Ace), c)
	assert.Len(t, p.Hand, 1)

	_, err = p.Play(card(deck.Two))
	assert.True(t, errors.Is(err, ErrCardNotInHand))
}

func TestPlayerDiscardHand(t *testing.T) {
	t.Parallel()

	p := NewPlayer("Alice", nil, NewHouseAgent())
	p.Hand = handOf(deck.Ace, deck.King)

	cards := p.DiscardHand()
	assert.Len(t, cards, 2)
	assert.Empty(t, p.Hand)
}

func TestPayout(t *testing.T) {
	t.Parallel()

	chips := NewCurrency("chip", "")

	t.Run("unlimited house pays any amount", func(t *testing.T) {
		dealer := NewPlayer("Dealer", nil, NewHouseAgent())
		got, err := dealer.Payout(chips, 1000000)
		require.NoError(t, err)
		assert.Equal(t, 1000000, got)
	})

	t.Run("bankrolled house withdraws", func(t *testing.T) {
		bank := NewBankroll()
		bank.Deposit(chips, 100)
		dealer := NewPlayer("Dealer", bank, NewHouseAgent())

		got, err := dealer.Payout(chips, 30)
		require.NoError(t, err)
		assert.Equal(t, 30, got)
		assert.Equal(t, 70, bank.Balance(chips))
	})

	t.Run("insolvent house fails rather than short-pays", func(t *testing.T) {
		bank := NewBankroll()
		bank.Deposit(chips, 10)
		dealer := NewPlayer("Dealer", bank, NewHouseAgent())

		_, err := dealer.Payout(chips, 30)
		assert.True(t, errors.Is(err, ErrInsufficientFunds))
		assert.Equal(t, 10, bank.Balance(chips), "no partial payment")
	})
}
