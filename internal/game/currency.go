package game

import "fmt"

// Currency is a named unit of value players bet with. Currencies compare by
// identity: two *Currency values are interchangeable only when they are the
// same object, so a table stocked with "chips" never honours someone else's
// chips. Bankrolls and pots key on the pointer for exactly this reason.
type Currency struct {
	Singular string
	Plural   string
}

// NewCurrency creates a currency. An empty plural defaults to singular+"s".
func NewCurrency(singular, plural string) *Currency {
	if plural == "" {
		plural = singular + "s"
	}
	return &Currency{Singular: singular, Plural: plural}
}

// FormatAmount renders an amount with the grammatically correct unit.
func (c *Currency) FormatAmount(amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%d %s", amount, c.Singular)
	}
	return fmt.Sprintf("%d %s", amount, c.Plural)
}

func (c *Currency) String() string {
	return c.Singular
}
