// Package screen models the single converter screen: a value field, a "from"
// selector, a "to" selector and a result line.
//
// Every event re-runs the conversion. No result is computed until both units
// have been chosen, unless a default unit is configured. An invalid number
// yields a one-shot notice and keeps the last displayed result.
//
// Concurrency: Service is NOT safe for concurrent use. Callers must serialise
// events.
package screen
