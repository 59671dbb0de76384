package conversion

import "github.com/shopspring/decimal"

// Format rounds d half-up (away from zero) to places fractional digits and
// renders it in plain notation without trailing zeros or a dangling point.
func Format(d decimal.Decimal, places int32) string {
	return d.Round(places).String()
}
