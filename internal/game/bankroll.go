package game

import "fmt"

// Bankroll maps currencies to non-negative balances. A currency absent from
// the map reads as a zero balance, but Funded distinguishes "never funded"
// from "spent down to zero".
type Bankroll struct {
	funds map[*Currency]int
}

// NewBankroll creates an empty bankroll.
func NewBankroll() *Bankroll {
	return &Bankroll{funds: make(map[*Currency]int)}
}

// Deposit adds amount to the balance for the given currency.
func (b *Bankroll) Deposit(cur *Currency, amount int) {
	b.funds[cur] += amount
}

// Withdraw removes amount from the balance for the given currency and
// returns it. It fails with ErrUnknownCurrency when the currency was never
// funded and ErrInsufficientFunds when the balance cannot cover the amount.
func (b *Bankroll) Withdraw(cur *Currency, amount int) (int, error) {
	balance, ok := b.funds[cur]
	if !ok {
		return 0, ErrUnknownCurrency
	}
	if balance < amount {
		return 0, ErrInsufficientFunds
	}
	b.funds[cur] = balance - amount
	return amount, nil
}

// Balance returns the balance for the given currency, zero when absent.
func (b *Bankroll) Balance(cur *Currency) int {
	return b.funds[cur]
}

// Funded reports whether the bankroll has ever held the given currency.
func (b *Bankroll) Funded(cur *Currency) bool {
	_, ok := b.funds[cur]
	return ok
}

// Format renders the balance for a currency, e.g. "42 chips".
func (b *Bankroll) Format(cur *Currency) string {
	return cur.FormatAmount(b.funds[cur])
}

func (b *Bankroll) String() string {
	if len(b.funds) == 0 {
		return "empty bankroll"
	}
	s := ""
	for cur, amount := range b.funds {
		if s != "" {
			s += ", "
		}
		s += cur.FormatAmount(amount)
	}
	return fmt.Sprintf("bankroll of %s", s)
}
