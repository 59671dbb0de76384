// Package conversion implements the length conversion engine.
//
// The engine parses the raw input as an exact decimal, multiplies it by a
// factor from a FactorTable, rounds the product half-up to a fixed number of
// fractional digits (6 by default) and renders it in plain notation with
// trailing zeros trimmed.
//
// The reference table carries one factor per ordered pair of distinct units.
// Factors are defined as binary doubles (3.28084, 1 / 30.48) and turned into
// decimals through their shortest round-trip representation, so 1 / 30.48
// becomes 0.03280839895013123.
//
// Engine and Table are immutable after construction and safe for concurrent
// use.
package conversion
