package game

import "errors"

var (
	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance
	// held for the requested currency.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownCurrency is returned when a withdrawal names a currency the
	// bankroll has never been funded with.
	ErrUnknownCurrency = errors.New("requested currency not in bankroll")

	// ErrNegativeBet is returned when a bet is minted with a negative amount.
	ErrNegativeBet = errors.New("bet amount cannot be negative")

	// ErrNotSeated is returned when removing a player who is not at the table.
	ErrNotSeated = errors.New("player is not at table")

	// ErrCardNotInHand is returned when playing a card the hand does not hold.
	ErrCardNotInHand = errors.New("card is not in hand")
)
