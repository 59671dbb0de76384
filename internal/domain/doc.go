// Package domain defines the length units, error kinds and converter contracts shared across the app.
// It contains plain types and interfaces only.
package domain
