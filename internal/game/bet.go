package game

import "fmt"

// BetKind distinguishes special wagers. Only BetStandard is reachable from
// any decision path; BetSurrender is reserved for a payout rule the game
// never offers.
type BetKind int

const (
	BetStandard BetKind = iota
	BetSurrender
)

func (k BetKind) String() string {
	switch k {
	case BetStandard:
		return "standard"
	case BetSurrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// Bet is a wager staked for a single round. Bets are minted by withdrawing
// from a bankroll (see Player.MakeBet) and are immutable afterwards.
type Bet struct {
	Currency *Currency
	Amount   int
	Kind     BetKind
}

func (b *Bet) String() string {
	return fmt.Sprintf("%s bet of %s", b.Kind, b.Currency.FormatAmount(b.Amount))
}
