package conversion

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"unitconv/internal/domain"
)

// maxExponent bounds the decimal exponent of accepted input.
const maxExponent = 1000

// numberPattern accepts an optional sign, digits with an optional point and an
// optional exponent: 5, 5., .5, -2.5, 1e3, 2.5E-4.
var numberPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// ParseInput parses raw as an exact decimal. Anything else, including the
// empty string, fails with domain.ErrInvalidNumber.
func ParseInput(raw string) (decimal.Decimal, error) {
	if !numberPattern.MatchString(raw) {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, raw)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, raw)
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, fmt.Errorf("%w: %q: exponent out of range", domain.ErrInvalidNumber, raw)
	}
	return d, nil
}
