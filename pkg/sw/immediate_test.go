package sw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmediate_ReturnsValuePerCase(t *testing.T) {
	t.Parallel()

	s := NewImmediate[int, string](5)

	res, ok, err := s.Case(Is(1), text("one"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, res)

	res, ok, err = s.Case(Between(4, 6), text("four-to-six"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "four-to-six", res)
	assert.True(t, s.Matched())

	require.NoError(t, s.Close())
	res, err = s.Result()
	require.NoError(t, err)
	assert.Equal(t, "four-to-six", res)
}

func TestImmediate_InertAfterFirstMatch(t *testing.T) {
	t.Parallel()

	calls := 0
	s := NewImmediate[int, int](3)

	_, ok, err := s.Case(When(func(v int) bool { return v > 0 }), func() int { calls++; return 1 })
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = s.Case(Is(3), func() int { calls++; return 2 })
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Default(func() int { calls++; return 3 })
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Close())
	assert.Equal(t, 1, calls)

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, 1, res)
}

func TestImmediate_MultipleMatches(t *testing.T) {
	t.Parallel()

	var hits []string
	hit := func(name string) func() string {
		return func() string {
			hits = append(hits, name)
			return name
		}
	}

	s := NewImmediate[int, string](12, WithMultipleMatches())
	_, _, err := s.Case(When(func(v int) bool { return v%2 == 0 }), hit("even"))
	require.NoError(t, err)
	_, _, err = s.Case(When(func(v int) bool { return v%3 == 0 }), hit("three"))
	require.NoError(t, err)
	_, _, err = s.Case(When(func(v int) bool { return v%5 == 0 }), hit("five"))
	require.NoError(t, err)
	_, ok, err := s.Default(hit("default"))
	require.NoError(t, err)
	assert.False(t, ok, "default only runs when nothing matched")

	require.NoError(t, s.Close())
	assert.Equal(t, []string{"even", "three"}, hits)

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, "three", res)
}

func TestImmediate_DefaultFires(t *testing.T) {
	t.Parallel()

	s := NewImmediate[string, string]("z")
	_, _, err := s.Case(OneOf("a", "b"), text("ab"))
	require.NoError(t, err)

	res, ok, err := s.Default(text("default"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "default", res)
	require.NoError(t, s.Close())
}

func TestImmediate_NoMatch(t *testing.T) {
	t.Parallel()

	s := NewImmediate[int, int](9)
	_, _, err := s.Case(Is(1), func() int { return 1 })
	require.NoError(t, err)

	require.ErrorIs(t, s.Close(), ErrNoMatch)
	_, err = s.Result()
	assert.ErrorIs(t, err, ErrResultNotReady)
}

func TestImmediate_DuplicateStillChecked(t *testing.T) {
	t.Parallel()

	s := NewImmediate[int, int](1)
	_, ok, err := s.Case(Is(1), func() int { return 1 })
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = s.Case(OneOf(2, 1), func() int { return 2 })
	require.ErrorIs(t, err, ErrDuplicateCase)
	require.ErrorIs(t, s.Close(), ErrDuplicateCase)
}

func TestImmediate_DuplicateRejectedBeforeActionRuns(t *testing.T) {
	t.Parallel()

	ran := false
	s := NewImmediate[int, int](4)
	_, _, err := s.Case(OneOf(1, 2), func() int { return 0 })
	require.NoError(t, err)

	_, ok, err := s.Case(OneOf(4, 2), func() int { ran = true; return 4 })
	require.ErrorIs(t, err, ErrDuplicateCase)
	assert.False(t, ok)
	assert.False(t, ran)
}

func TestImmediate_InvalidAction(t *testing.T) {
	t.Parallel()

	s := NewImmediate[int, int](1)
	_, _, err := s.Case(Is(1), nil)
	require.ErrorIs(t, err, ErrInvalidAction)
}
