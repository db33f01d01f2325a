package sw

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type state uint8

const (
	searching state = iota
	matchedStopped
	matchedFalling
)

// Switch is the chained-actions dispatcher. Matching happens as cases are
// registered; the matched action and every action it falls through to are
// queued and run in registration order by Close. The last one's return value
// becomes the result.
type Switch[V comparable, R any] struct {
	id      uuid.UUID
	value   V
	opts    Options
	reg     registry[V]
	state   state
	queue   []func() R
	err     error
	closed  bool
	outcome Result[R]
}

func New[V comparable, R any](value V, opts ...Option) *Switch[V, R] {
	return &Switch[V, R]{
		id:    uuid.New(),
		value: value,
		opts:  applyOptions(opts),
		reg:   newRegistry[V](),
	}
}

func (s *Switch[V, R]) Value() V {
	return s.value
}

func (s *Switch[V, R]) ID() uuid.UUID {
	return s.id
}

func (s *Switch[V, R]) Matched() bool {
	return s.state != searching
}

// Case registers action under key. flow overrides the dispatcher's default
// flow; for collection and range keys it applies once to the whole group.
//
// Once a case has matched without falling through, later cases are still
// validated but never run.
func (s *Switch[V, R]) Case(key Key[V], action func() R, flow ...Flow) error {
	if err := s.usable(); err != nil {
		return err
	}
	if action == nil {
		return s.fail(fmt.Errorf("%w: case %v has no action", ErrInvalidAction, key))
	}

	e, err := s.reg.register(key)
	if err != nil {
		return s.fail(err)
	}

	s.advance(key, &e, action, s.opts.resolve(flow))
	return nil
}

// Default registers action to run when no earlier case matched, or when the
// case before it falls through.
func (s *Switch[V, R]) Default(action func() R) error {
	return s.Case(defaultCase[V](), action)
}

func (s *Switch[V, R]) advance(key Key[V], e *expansion[V], action func() R, flow Flow) {
	switch s.state {
	case matchedStopped:
		return
	case matchedFalling:
		s.opts.Logger.Debug("falling through", s.attrs(slog.String("case", key.String()))...)
	case searching:
		if !e.matches(s.value) {
			return
		}
		s.opts.Logger.Debug("case matched", s.attrs(slog.String("case", key.String()))...)
	}

	s.queue = append(s.queue, action)
	if flow == FallThrough {
		s.state = matchedFalling
	} else {
		s.state = matchedStopped
	}
}

// Close exits the switch block. It reports the first registration error, or
// ErrNoMatch when nothing matched; otherwise it runs the queued actions.
func (s *Switch[V, R]) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	if s.err != nil {
		return s.err
	}
	if s.state == searching {
		s.opts.Logger.Debug("no match", s.attrs()...)
		return fmt.Errorf("%w: value %v", ErrNoMatch, s.value)
	}

	var last R
	for _, action := range s.queue {
		last = action()
	}
	s.outcome = captured(s.id, last)
	s.opts.Logger.Debug("switch resolved", s.attrs(slog.Int("actions", len(s.queue)))...)

	return nil
}

func (s *Switch[V, R]) Result() (R, error) {
	if !s.outcome.HasResult() {
		var zero R
		return zero, ErrResultNotReady
	}
	return s.outcome.Result(), nil
}

func (s *Switch[V, R]) Outcome() Result[R] {
	return s.outcome
}

func (s *Switch[V, R]) usable() error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *Switch[V, R]) fail(err error) error {
	s.err = err
	s.opts.Logger.Debug("case rejected", s.attrs(slog.Any("error", err))...)
	return err
}

func (s *Switch[V, R]) attrs(extra ...any) []any {
	return append([]any{slog.String("switch_id", s.id.String()), slog.Any("value", s.value)}, extra...)
}
