package domain

import (
	"fmt"
	"strings"
)

// Unit identifies a linear length unit. The zero value is Unselected.
type Unit int

const (
	// Unselected means no unit has been chosen yet. It is never convertible.
	Unselected Unit = iota
	Millimeters
	Centimeters
	Meters
	Kilometers
	Feet
)

var unitNames = [...]string{
	Unselected:  "Unselected",
	Millimeters: "Millimeters",
	Centimeters: "Centimeters",
	Meters:      "Meters",
	Kilometers:  "Kilometers",
	Feet:        "Feet",
}

var unitSymbols = [...]string{
	Millimeters: "mm",
	Centimeters: "cm",
	Meters:      "m",
	Kilometers:  "km",
	Feet:        "ft",
}

// unitAliases lists the extra spellings ParseUnit accepts, besides the name
// and symbol.
var unitAliases = map[Unit][]string{
	Millimeters: {"millimeter", "millimetre", "millimetres"},
	Centimeters: {"centimeter", "centimetre", "centimetres"},
	Meters:      {"meter", "metre", "metres"},
	Kilometers:  {"kilometer", "kilometre", "kilometres"},
	Feet:        {"foot"},
}

var unitsByName = func() map[string]Unit {
	m := make(map[string]Unit)
	for _, u := range AllUnits() {
		m[strings.ToLower(u.String())] = u
		m[u.Symbol()] = u
		for _, a := range unitAliases[u] {
			m[a] = u
		}
	}
	return m
}()

// AllUnits returns the convertible units in display order.
func AllUnits() []Unit {
	return []Unit{Millimeters, Centimeters, Meters, Kilometers, Feet}
}

// Valid reports whether u is one of the convertible units.
func (u Unit) Valid() bool {
	return u >= Millimeters && u <= Feet
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Symbol returns the short symbol such as "km", or "" for Unselected.
func (u Unit) Symbol() string {
	if !u.Valid() {
		return ""
	}
	return unitSymbols[u]
}

// Aliases returns the extra spellings accepted for u.
func (u Unit) Aliases() []string {
	return append([]string(nil), unitAliases[u]...)
}

// ParseUnit resolves a unit from its name, symbol or alias, ignoring case.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitsByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Unselected, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

// MarshalText encodes u as its name.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, u)
	}
	return []byte(u.String()), nil
}

// UnmarshalText mirrors MarshalText and also accepts symbols and aliases.
func (u *Unit) UnmarshalText(b []byte) error {
	parsed, err := ParseUnit(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
