package sw

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Immediate is the immediate-evaluation dispatcher: Case runs the action as
// soon as its key matches and hands the value back to the caller. After the
// first match the remaining cases are inert unless WithMultipleMatches is set.
type Immediate[V comparable, R any] struct {
	id      uuid.UUID
	value   V
	opts    Options
	reg     registry[V]
	matched bool
	last    R
	err     error
	closed  bool
	outcome Result[R]
}

func NewImmediate[V comparable, R any](value V, opts ...Option) *Immediate[V, R] {
	return &Immediate[V, R]{
		id:    uuid.New(),
		value: value,
		opts:  applyOptions(opts),
		reg:   newRegistry[V](),
	}
}

func (s *Immediate[V, R]) Value() V {
	return s.value
}

func (s *Immediate[V, R]) ID() uuid.UUID {
	return s.id
}

func (s *Immediate[V, R]) Matched() bool {
	return s.matched
}

// Case returns the action's value and true when the action ran.
func (s *Immediate[V, R]) Case(key Key[V], action func() R) (R, bool, error) {
	var zero R

	if err := s.usable(); err != nil {
		return zero, false, err
	}
	if action == nil {
		return zero, false, s.fail(fmt.Errorf("%w: case %v has no action", ErrInvalidAction, key))
	}

	e, err := s.reg.register(key)
	if err != nil {
		return zero, false, s.fail(err)
	}

	if s.matched && (e.isDefault || !s.opts.MultipleMatches) {
		return zero, false, nil
	}
	if !e.matches(s.value) {
		return zero, false, nil
	}

	s.opts.Logger.Debug("case matched", s.attrs(slog.String("case", key.String()))...)
	s.matched = true
	s.last = action()
	return s.last, true, nil
}

// Default runs action when no earlier case matched.
func (s *Immediate[V, R]) Default(action func() R) (R, bool, error) {
	return s.Case(defaultCase[V](), action)
}

// Close exits the block. Actions already ran, so it only reports the first
// registration error or a missing match, and captures the latest value.
func (s *Immediate[V, R]) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	if s.err != nil {
		return s.err
	}
	if !s.matched {
		s.opts.Logger.Debug("no match", s.attrs()...)
		return fmt.Errorf("%w: value %v", ErrNoMatch, s.value)
	}

	s.outcome = captured(s.id, s.last)
	s.opts.Logger.Debug("switch resolved", s.attrs()...)
	return nil
}

// Result returns the value of the most recent action that ran.
func (s *Immediate[V, R]) Result() (R, error) {
	if !s.outcome.HasResult() {
		var zero R
		return zero, ErrResultNotReady
	}
	return s.outcome.Result(), nil
}

func (s *Immediate[V, R]) Outcome() Result[R] {
	return s.outcome
}

func (s *Immediate[V, R]) usable() error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *Immediate[V, R]) fail(err error) error {
	s.err = err
	s.opts.Logger.Debug("case rejected", s.attrs(slog.Any("error", err))...)
	return err
}

func (s *Immediate[V, R]) attrs(extra ...any) []any {
	return append([]any{slog.String("switch_id", s.id.String()), slog.Any("value", s.value)}, extra...)
}
