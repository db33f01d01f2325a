package fluent

import (
	"errors"

	"github.com/ib-77/switch3/pkg/sw"
)

type Chain[V comparable, R any] struct {
	s   *sw.Switch[V, R]
	err error
}

func On[V comparable, R any](value V, opts ...sw.Option) *Chain[V, R] {
	return &Chain[V, R]{s: sw.New[V, R](value, opts...)}
}

// Case registers a case unless an earlier call already failed.
func (c *Chain[V, R]) Case(key sw.Key[V], action func() R, flow ...sw.Flow) *Chain[V, R] {
	if c.err != nil {
		return c
	}
	c.err = c.s.Case(key, action, flow...)
	return c
}

// Is is Case with a literal key.
func (c *Chain[V, R]) Is(v V, action func() R, flow ...sw.Flow) *Chain[V, R] {
	return c.Case(sw.Is(v), action, flow...)
}

// Then is Is with a constant result.
func (c *Chain[V, R]) Then(v V, result R, flow ...sw.Flow) *Chain[V, R] {
	return c.Is(v, func() R { return result }, flow...)
}

func (c *Chain[V, R]) Default(action func() R) *Chain[V, R] {
	if c.err != nil {
		return c
	}
	c.err = c.s.Default(action)
	return c
}

// Err returns the first registration error, if any.
func (c *Chain[V, R]) Err() error {
	return c.err
}

// Get exits the switch block and returns its result.
func (c *Chain[V, R]) Get() (R, error) {
	if c.err != nil {
		var zero R
		return zero, c.err
	}
	if err := c.s.Close(); err != nil && !errors.Is(err, sw.ErrClosed) {
		c.err = err
		var zero R
		return zero, err
	}
	return c.s.Result()
}

// Outcome exits the block and returns the captured Result; it is empty when
// the block failed.
func (c *Chain[V, R]) Outcome() sw.Result[R] {
	_, _ = c.Get()
	return c.s.Outcome()
}

// OrElse returns fallback when the switch failed for any reason.
func (c *Chain[V, R]) OrElse(fallback R) R {
	res, err := c.Get()
	if err != nil {
		return fallback
	}
	return res
}

// Finally collapses the chain to a value through onSuccess or onFailure.
func (c *Chain[V, R]) Finally(onSuccess func(R) R, onFailure func(error) R) R {
	res, err := c.Get()
	if err != nil {
		return onFailure(err)
	}
	return onSuccess(res)
}
