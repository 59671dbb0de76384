package conversion

import (
	"fmt"

	"github.com/shopspring/decimal"

	"unitconv/internal/domain"
)

const (
	// DefaultScale is the number of fractional digits results are rounded to.
	DefaultScale int32 = 6
	// MaxScale bounds WithScale.
	MaxScale int32 = 18
)

// Engine converts values using a FactorTable.
type Engine struct {
	table domain.FactorTable
	scale int32
}

// Option configures an Engine.
type Option func(*Engine)

// WithScale sets the rounding precision. Values outside [0, MaxScale] are
// ignored.
func WithScale(places int32) Option {
	return func(e *Engine) {
		if places >= 0 && places <= MaxScale {
			e.scale = places
		}
	}
}

// New returns an engine over table, or over the reference table when table is
// nil.
func New(table domain.FactorTable, opts ...Option) *Engine {
	if table == nil {
		table = Reference()
	}
	e := &Engine{table: table, scale: DefaultScale}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scale returns the rounding precision in fractional digits.
func (e *Engine) Scale() int32 { return e.scale }

// Table returns the factor table the engine reads.
func (e *Engine) Table() domain.FactorTable { return e.table }

// Convert converts rawInput from one unit to another and formats the result.
// Empty input yields "" for any pair of units.
func (e *Engine) Convert(rawInput string, from, to domain.Unit) (string, error) {
	if rawInput == "" {
		return "", nil
	}
	v, err := ParseInput(rawInput)
	if err != nil {
		return "", err
	}
	out, err := e.ConvertDecimal(v, from, to)
	if err != nil {
		return "", err
	}
	return Format(out, e.scale), nil
}

// ConvertDecimal multiplies v by the from -> to factor and rounds the product
// to the engine's scale.
func (e *Engine) ConvertDecimal(v decimal.Decimal, from, to domain.Unit) (decimal.Decimal, error) {
	if !from.Valid() {
		return decimal.Zero, fmt.Errorf("from %s: %w", from, domain.ErrUnknownUnit)
	}
	if !to.Valid() {
		return decimal.Zero, fmt.Errorf("to %s: %w", to, domain.ErrUnknownUnit)
	}
	factor, ok := e.table.Factor(from, to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%s -> %s: %w", from, to, domain.ErrUnsupportedUnitPair)
	}
	return v.Mul(factor).Round(e.scale), nil
}

// FormatFactor renders the from -> to factor at the engine's scale.
func (e *Engine) FormatFactor(from, to domain.Unit) (string, error) {
	out, err := e.ConvertDecimal(decimal.NewFromInt(1), from, to)
	if err != nil {
		return "", err
	}
	return Format(out, e.scale), nil
}

var _ domain.Converter = (*Engine)(nil)
