// Package domain defines core data structures shared by the symbol parsing,
// reconciliation and reporting code.
package domain

import (
	"fmt"
	"strings"
)

// Pair is a trading symbol decomposed into currency codes.
type Pair struct {
	// Base currency code, the asset being priced.
	Base string
	// Quote currency code. Empty when the symbol could not be split.
	Quote string
}

// String returns the string representation.
func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", p.Base, p.Quote)
}

// Symbol returns the concatenated symbol representation.
func (p Pair) Symbol() string {
	return fmt.Sprintf("%s%s", p.Base, p.Quote)
}

// Parsed reports whether a quote currency is known.
func (p Pair) Parsed() bool {
	return p.Quote != ""
}

// EqualFold compares both codes case-insensitively.
func (p Pair) EqualFold(other Pair) bool {
	return strings.EqualFold(p.Base, other.Base) && strings.EqualFold(p.Quote, other.Quote)
}
