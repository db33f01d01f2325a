package sw

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

type keyKind uint8

const (
	invalidKind keyKind = iota
	literalKind
	predicateKind
	groupKind
	seqKind
	defaultKind
)

// Integer is satisfied by every integer type usable in a range key.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Key is a case key: a literal, a predicate, a collection of keys or a
// sequence of literals. The zero Key is invalid.
type Key[V comparable] struct {
	kind    keyKind
	literal V
	pred    func(V) bool
	members []Key[V]
	seq     iter.Seq[V]
	label   string
	err     error
}

// Is matches a dispatch value equal to v.
func Is[V comparable](v V) Key[V] {
	return Key[V]{kind: literalKind, literal: v}
}

// When matches a dispatch value for which pred returns true.
func When[V comparable](pred func(V) bool) Key[V] {
	if pred == nil {
		return Key[V]{kind: predicateKind, err: fmt.Errorf("%w: nil predicate", ErrInvalidKey)}
	}
	return Key[V]{kind: predicateKind, pred: pred}
}

// OneOf matches a dispatch value equal to any of vs.
func OneOf[V comparable](vs ...V) Key[V] {
	members := make([]Key[V], 0, len(vs))
	for _, v := range vs {
		members = append(members, Is(v))
	}
	return Key[V]{kind: groupKind, members: members}
}

// AnyOf matches when any member key matches. Literal members are compared
// before any predicate member is called.
func AnyOf[V comparable](keys ...Key[V]) Key[V] {
	return Key[V]{kind: groupKind, members: slices.Clone(keys)}
}

// In matches a dispatch value equal to any value produced by seq.
// The sequence is drained once, when the case is registered.
func In[V comparable](seq iter.Seq[V]) Key[V] {
	if seq == nil {
		return Key[V]{kind: seqKind, err: fmt.Errorf("%w: nil sequence", ErrInvalidKey)}
	}
	return Key[V]{kind: seqKind, seq: seq, label: "seq"}
}

// Range matches integers from start up to, but not including, stop.
// A negative step counts down. A zero step is invalid.
func Range[V Integer](start, stop, step V) Key[V] {
	label := fmt.Sprintf("range(%v, %v, %v)", start, stop, step)
	if step == 0 {
		return Key[V]{kind: seqKind, label: label, err: fmt.Errorf("%w: %s has a zero step", ErrInvalidKey, label)}
	}

	seq := func(yield func(V) bool) {
		if step > 0 {
			for v := start; v < stop; {
				if !yield(v) {
					return
				}
				next := v + step
				if next <= v {
					return
				}
				v = next
			}
			return
		}
		for v := start; v > stop; {
			if !yield(v) {
				return
			}
			next := v + step
			if next >= v {
				return
			}
			v = next
		}
	}
	return Key[V]{kind: seqKind, seq: seq, label: label}
}

// Between matches integers from start to stop inclusive. See ClosedRange.
func Between[V Integer](start, stop V, step ...V) Key[V] {
	label := fmt.Sprintf("[%v..%v]", start, stop)
	seq, err := ClosedRange(start, stop, step...)
	if err != nil {
		return Key[V]{kind: seqKind, label: label, err: fmt.Errorf("%w: %w", ErrInvalidKey, err)}
	}
	return Key[V]{kind: seqKind, seq: seq, label: label}
}

func defaultCase[V comparable]() Key[V] {
	return Key[V]{kind: defaultKind}
}

// Matches reports whether v matches k. It fails for keys that could not be
// registered.
func (k Key[V]) Matches(v V) (bool, error) {
	var e expansion[V]
	if err := k.expand(&e); err != nil {
		return false, err
	}
	return e.matches(v), nil
}

func (k Key[V]) String() string {
	switch k.kind {
	case literalKind:
		return fmt.Sprint(k.literal)
	case predicateKind:
		return "when(...)"
	case groupKind:
		parts := make([]string, 0, len(k.members))
		for _, m := range k.members {
			parts = append(parts, m.String())
		}
		return "[" + strings.Join(parts, " ") + "]"
	case seqKind:
		return k.label
	case defaultKind:
		return "default"
	default:
		return "invalid"
	}
}

// expansion is a key flattened into literal and predicate members.
type expansion[V comparable] struct {
	literals  []V
	preds     []func(V) bool
	isDefault bool
}

func (k Key[V]) expand(into *expansion[V]) error {
	if k.err != nil {
		return k.err
	}

	switch k.kind {
	case literalKind:
		if err := checkLiteral(k.literal); err != nil {
			return err
		}
		into.literals = append(into.literals, k.literal)
	case predicateKind:
		into.preds = append(into.preds, k.pred)
	case groupKind:
		if len(k.members) == 0 {
			return fmt.Errorf("%w: an empty collection never matches", ErrInvalidKey)
		}
		for _, m := range k.members {
			if m.kind == defaultKind {
				return fmt.Errorf("%w: default cannot be part of a collection", ErrInvalidKey)
			}
			if err := m.expand(into); err != nil {
				return err
			}
		}
	case seqKind:
		n := 0
		for v := range k.seq {
			if err := checkLiteral(v); err != nil {
				return err
			}
			into.literals = append(into.literals, v)
			n++
		}
		if n == 0 {
			return fmt.Errorf("%w: %s is empty and never matches", ErrInvalidKey, k.label)
		}
	case defaultKind:
		into.isDefault = true
	default:
		return fmt.Errorf("%w: zero key", ErrInvalidKey)
	}
	return nil
}

func (e *expansion[V]) matches(v V) bool {
	if e.isDefault {
		return true
	}
	if slices.Contains(e.literals, v) {
		return true
	}
	for _, pred := range e.preds {
		if pred(v) {
			return true
		}
	}
	return false
}
