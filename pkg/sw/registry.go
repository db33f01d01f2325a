package sw

import (
	"fmt"
	"maps"
)

// registry remembers every literal key bound to a case in one dispatcher.
type registry[V comparable] struct {
	seen        map[V]struct{}
	defaultSeen bool
}

func newRegistry[V comparable]() registry[V] {
	return registry[V]{seen: make(map[V]struct{})}
}

// register expands key and records its literals. Nothing is recorded when the
// key is rejected.
func (r *registry[V]) register(key Key[V]) (expansion[V], error) {
	var e expansion[V]
	if err := key.expand(&e); err != nil {
		return e, err
	}

	if e.isDefault {
		if r.defaultSeen {
			return e, fmt.Errorf("%w: default", ErrDuplicateCase)
		}
		r.defaultSeen = true
		return e, nil
	}

	group := make(map[V]struct{}, len(e.literals))
	for _, lit := range e.literals {
		if _, ok := r.seen[lit]; ok {
			return e, fmt.Errorf("%w: %v", ErrDuplicateCase, lit)
		}
		if _, ok := group[lit]; ok {
			return e, fmt.Errorf("%w: %v", ErrDuplicateCase, lit)
		}
		group[lit] = struct{}{}
	}
	maps.Copy(r.seen, group)

	return e, nil
}
