package domain

import "github.com/shopspring/decimal"

// Converter turns raw user input in one unit into formatted text in another.
//
// An empty input yields an empty result and no error.
type Converter interface {
	Convert(rawInput string, from, to Unit) (string, error)
}

// FactorTable supplies multiplicative factors between units such that
// value_in_to = value_in_from * factor.
type FactorTable interface {
	// Factor returns the factor for from -> to; ok is false for a missing pair.
	Factor(from, to Unit) (factor decimal.Decimal, ok bool)
	// Units lists the units the table covers.
	Units() []Unit
}
