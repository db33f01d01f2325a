package sw

import (
	"fmt"
	"iter"
)

// ClosedRange returns the integers from start to stop, both inclusive, in
// increments of step (1 when omitted). The sequence is lazy and can be ranged
// over any number of times.
func ClosedRange[V Integer](start, stop V, step ...V) (iter.Seq[V], error) {
	inc := V(1)
	if len(step) > 0 {
		inc = step[0]
	}

	if start >= stop {
		return nil, fmt.Errorf("%w: start %v must be less than stop %v", ErrInvalidRange, start, stop)
	}
	if inc <= 0 {
		return nil, fmt.Errorf("%w: step %v must be positive", ErrInvalidRange, inc)
	}

	return func(yield func(V) bool) {
		for v := start; ; {
			if !yield(v) {
				return
			}
			next := v + inc
			if next <= v || next > stop {
				return
			}
			v = next
		}
	}, nil
}

// MustClosedRange is ClosedRange for constant bounds; it panics on an invalid range.
func MustClosedRange[V Integer](start, stop V, step ...V) iter.Seq[V] {
	seq, err := ClosedRange(start, stop, step...)
	if err != nil {
		panic(err)
	}
	return seq
}
