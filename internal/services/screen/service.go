package screen

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"unitconv/internal/domain"
)

const (
	// Placeholder is shown on a selector that has not been chosen yet.
	Placeholder = "Select"
	// InvalidNumberNotice is the notice raised for non-numeric input.
	InvalidNumberNotice = "Please enter a valid number"
)

// State is what the screen currently displays.
type State struct {
	Input  string
	From   domain.Unit
	To     domain.Unit
	Result string
}

// Ready reports whether both units have been chosen.
func (st State) Ready() bool { return st.From.Valid() && st.To.Valid() }

// FromLabel is the text on the "from" selector.
func (st State) FromLabel() string { return label(st.From) }

// ToLabel is the text on the "to" selector.
func (st State) ToLabel() string { return label(st.To) }

// ResultLine renders "Result: <value> <to-unit>", omitting empty parts.
func (st State) ResultLine() string {
	parts := []string{"Result:"}
	if st.Result != "" {
		parts = append(parts, st.Result)
	}
	if st.To.Valid() {
		parts = append(parts, st.To.String())
	}
	return strings.Join(parts, " ")
}

func label(u domain.Unit) string {
	if !u.Valid() {
		return Placeholder
	}
	return u.String()
}

// Update is the outcome of one event. Notice is set only on the update that
// raised it.
type Update struct {
	State    State
	Notice   string
	Computed bool
}

// Service holds the screen state and applies events to it.
type Service struct {
	conv   domain.Converter
	state  State
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultUnit preselects both selectors so results appear as soon as a
// value is typed. Unselected or invalid units are ignored.
func WithDefaultUnit(u domain.Unit) Option {
	return func(s *Service) {
		if u.Valid() {
			s.state.From, s.state.To = u, u
		}
	}
}

// WithLogger sets the logger used for event tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a screen backed by conv.
func New(conv domain.Converter, opts ...Option) *Service {
	s := &Service{conv: conv, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current screen state.
func (s *Service) State() State { return s.state }

// SetInput replaces the value field contents.
func (s *Service) SetInput(raw string) Update {
	s.state.Input = raw
	return s.recompute("input")
}

// SelectFrom chooses the source unit.
func (s *Service) SelectFrom(u domain.Unit) Update {
	if !u.Valid() {
		return s.reject(u)
	}
	s.state.From = u
	return s.recompute("from")
}

// SelectTo chooses the target unit.
func (s *Service) SelectTo(u domain.Unit) Update {
	if !u.Valid() {
		return s.reject(u)
	}
	s.state.To = u
	return s.recompute("to")
}

func (s *Service) reject(u domain.Unit) Update {
	return Update{State: s.state, Notice: fmt.Sprintf("%s: %s", domain.ErrUnknownUnit, u)}
}

func (s *Service) recompute(event string) Update {
	if !s.state.Ready() {
		s.logger.Debug("screen event deferred", "event", event, "from", s.state.From.String(), "to", s.state.To.String())
		return Update{State: s.state}
	}

	out, err := s.conv.Convert(s.state.Input, s.state.From, s.state.To)
	if err != nil {
		s.logger.Debug("screen conversion failed", "event", event, "input", s.state.Input, "error", err)
		notice := err.Error()
		if errors.Is(err, domain.ErrInvalidNumber) {
			notice = InvalidNumberNotice
		}
		return Update{State: s.state, Notice: notice, Computed: true}
	}

	s.state.Result = out
	s.logger.Debug("screen result", "event", event, "result", out)
	return Update{State: s.state, Computed: true}
}
