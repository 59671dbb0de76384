package domain

import "errors"

var (
	// ErrInvalidNumber is returned when the input text is not a decimal number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrUnknownUnit is returned for a unit outside the convertible set,
	// including Unselected and unrecognised unit names.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnsupportedUnitPair is returned when a conversion table has no factor
	// for a pair of distinct units.
	ErrUnsupportedUnitPair = errors.New("unsupported unit pair")
)
