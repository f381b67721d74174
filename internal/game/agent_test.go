package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

func TestHouseAgentNeverBets(t *testing.T) {
	t.Parallel()

	dealer := NewPlayer("Dealer", nil, NewHouseAgent())
	bet, err := dealer.DecideBet(NewCurrency("chip", ""))
	require.NoError(t, err)
	assert.Nil(t, bet)
}

func TestHouseAgentHitPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ranks []deck.Rank
		hit   bool
	}{
		{"sixteen hits", []deck.Rank{deck.Ten, deck.Six}, true},
		{"hard seventeen stands", []deck.Rank{deck.Ten, deck.Seven}, false},
		{"soft seventeen stands", []deck.Rank{deck.Ace, deck.Six}, false},
		{"twelve hits", []deck.Rank{deck.Ten, deck.Two}, true},
		{"twenty stands", []deck.Rank{deck.Ten, deck.Queen}, false},
		{"soft sixteen hits", []deck.Rank{deck.Ace, deck.Five}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dealer := NewPlayer("Dealer", nil, NewHouseAgent())
			dealer.Hand = handOf(tc.ranks...)

			hit, err := dealer.DecideHit()
			require.NoError(t, err)
			assert.Equal(t, tc.hit, hit)
		})
	}
}

func TestInteractiveAgentBet(t *testing.T) {
	t.Parallel()

	chips := NewCurrency("chip", "")

	t.Run("valid bet withdraws from bankroll", func(t *testing.T) {
		ui := &scriptUI{bets: []int{10}}
		p := newFundedPlayer("Alice", chips, 50, ui)

		bet, err := p.DecideBet(chips)
		require.NoError(t, err)
		require.NotNil(t, bet)
		assert.Equal(t, 10, bet.Amount)
		assert.Equal(t, BetStandard, bet.Kind)
		assert.Equal(t, 40, p.Bankroll.Balance(chips))
	})

	t.Run("zero sits the round out", func(t *testing.T) {
		ui := &scriptUI{bets: []int{0}}
		p := newFundedPlayer("Alice", chips, 50, ui)

		bet, err := p.DecideBet(chips)
		require.NoError(t, err)
		assert.Nil(t, bet)
		assert.Equal(t, 50, p.Bankroll.Balance(chips))
	})

	t.Run("negative amount re-prompts", func(t *testing.T) {
		ui := &scriptUI{bets: []int{-5, 10}}
		p := newFundedPlayer("Alice", chips, 50, ui)

		bet, err := p.DecideBet(chips)
		require.NoError(t, err)
		require.NotNil(t, bet)
		assert.Equal(t, 10, bet.Amount)
		assert.True(t, ui.sawLine("Bet invalid"))
	})

	t.Run("insufficient funds re-prompts", func(t *testing.T) {
		ui := &scriptUI{bets: []int{100, 25}}
		p := newFundedPlayer("Alice", chips, 50, ui)

		bet, err := p.DecideBet(chips)
		require.NoError(t, err)
		require.NotNil(t, bet)
		assert.Equal(t, 25, bet.Amount)
		assert.Equal(t, 25, p.Bankroll.Balance(chips))
		assert.True(t, ui.sawLine("Bet invalid"))
	})
}

func TestInteractiveAgentHit(t *testing.T) {
	t.Parallel()

	chips := NewCurrency("chip", "")

	ui := &scriptUI{choices: []string{"hit", "stay"}}
	p := newFundedPlayer("Alice", chips, 50, ui)

	hit, err := p.DecideHit()
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = p.DecideHit()
	require.NoError(t, err)
	assert.False(t, hit)
}

func newFundedPlayer(name string, cur *Currency, amount int, ui UI) *Player {
	bank := NewBankroll()
	bank.Deposit(cur, amount)
	return NewPlayer(name, bank, NewInteractiveAgent(ui))
}
