package conversion

import (
	"fmt"

	"github.com/shopspring/decimal"

	"unitconv/internal/domain"
)

// Entry is one stored factor: a value in From times Factor is the value in To.
type Entry struct {
	From   domain.Unit
	To     domain.Unit
	Factor float64
}

type pair struct {
	from, to domain.Unit
}

// Table is an immutable factor table. The identity pair always has factor 1
// and is never stored.
type Table struct {
	factors map[pair]decimal.Decimal
	units   []domain.Unit
}

// NewTable builds a table from entries. It rejects unknown units, diagonal
// entries, non-positive factors and duplicate pairs.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{factors: make(map[pair]decimal.Decimal, len(entries))}
	seen := make(map[domain.Unit]bool)
	for _, e := range entries {
		if !e.From.Valid() || !e.To.Valid() {
			return nil, fmt.Errorf("table entry %s -> %s: %w", e.From, e.To, domain.ErrUnknownUnit)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("table entry %s -> %s: identity pairs are implicit", e.From, e.To)
		}
		if !(e.Factor > 0) {
			return nil, fmt.Errorf("table entry %s -> %s: factor must be positive, got %v", e.From, e.To, e.Factor)
		}
		k := pair{e.From, e.To}
		if _, dup := t.factors[k]; dup {
			return nil, fmt.Errorf("table entry %s -> %s: duplicate", e.From, e.To)
		}
		t.factors[k] = decimal.NewFromFloat(e.Factor)
		seen[e.From], seen[e.To] = true, true
	}
	for _, u := range domain.AllUnits() {
		if seen[u] {
			t.units = append(t.units, u)
		}
	}
	return t, nil
}

// Factor returns the factor for from -> to. Equal valid units yield 1.
func (t *Table) Factor(from, to domain.Unit) (decimal.Decimal, bool) {
	if from == to && from.Valid() {
		return decimal.NewFromInt(1), true
	}
	f, ok := t.factors[pair{from, to}]
	return f, ok
}

// Units returns the units that appear in at least one entry, in display order.
func (t *Table) Units() []domain.Unit {
	return append([]domain.Unit(nil), t.units...)
}

// Len returns the number of stored (non-identity) entries.
func (t *Table) Len() int { return len(t.factors) }

// inverse is evaluated in float64: reciprocal factors are the rounded double,
// not the exact decimal quotient.
func inverse(x float64) float64 { return 1 / x }

// ReferenceEntries returns the 20 reference factors.
func ReferenceEntries() []Entry {
	const (
		mm = domain.Millimeters
		cm = domain.Centimeters
		m  = domain.Meters
		km = domain.Kilometers
		ft = domain.Feet
	)
	return []Entry{
		{cm, m, 0.01},
		{cm, ft, inverse(30.48)},
		{cm, mm, 10.0},
		{cm, km, 0.00001},

		{m, cm, 100.0},
		{m, ft, 3.28084},
		{m, mm, 1000.0},
		{m, km, 0.001},

		{ft, cm, 30.48},
		{ft, m, inverse(3.28084)},
		{ft, mm, 304.8},
		{ft, km, 0.0003048},

		{mm, cm, 0.1},
		{mm, m, 0.001},
		{mm, ft, inverse(304.8)},
		{mm, km, 0.000001},

		{km, cm, 100000.0},
		{km, m, 1000.0},
		{km, ft, 3280.84},
		{km, mm, 1000000.0},
	}
}

var reference = mustTable(ReferenceEntries())

// Reference returns the process-wide reference table.
func Reference() *Table { return reference }

func mustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

var _ domain.FactorTable = (*Table)(nil)
