package sw

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func literalsOf[V comparable](t *testing.T, k Key[V]) []V {
	t.Helper()
	var e expansion[V]
	require.NoError(t, k.expand(&e))
	return e.literals
}

func TestRange_HalfOpen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3, 4}, literalsOf(t, Range(1, 5, 1)))
	assert.Equal(t, []int{0, 3, 6, 9}, literalsOf(t, Range(0, 10, 3)))
	assert.Equal(t, []int{5, 3, 1}, literalsOf(t, Range(5, 0, -2)))
	assert.Equal(t, []int8{120, 125}, literalsOf(t, Range[int8](120, 127, 5)))
	assert.Equal(t, []int8{-120, -125}, literalsOf(t, Range[int8](-120, -128, -5)))
}

func TestRange_ZeroStep(t *testing.T) {
	t.Parallel()

	_, err := Range(1, 5, 0).Matches(1)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestBetween(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3, 4, 5}, literalsOf(t, Between(3, 5)))

	_, err := Between(5, 3).Matches(4)
	require.ErrorIs(t, err, ErrInvalidKey)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestKey_Matches(t *testing.T) {
	t.Parallel()

	even := When(func(v int) bool { return v%2 == 0 })

	tests := []struct {
		name  string
		key   Key[int]
		value int
		want  bool
	}{
		{name: "literal hit", key: Is(3), value: 3, want: true},
		{name: "literal miss", key: Is(3), value: 4, want: false},
		{name: "predicate hit", key: even, value: 4, want: true},
		{name: "predicate miss", key: even, value: 5, want: false},
		{name: "collection literal", key: OneOf(1, 2, 3), value: 2, want: true},
		{name: "mixed collection predicate", key: AnyOf(Is(1), even), value: 8, want: true},
		{name: "nested collections", key: AnyOf(OneOf(1, 2), AnyOf(Range(10, 12, 1), Is(20))), value: 11, want: true},
		{name: "nested miss", key: AnyOf(OneOf(1, 2), Range(10, 12, 1)), value: 12, want: false},
		{name: "sequence", key: In(slices.Values([]int{7, 9})), value: 9, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.key.Matches(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3", Is(3).String())
	assert.Equal(t, "[[1 2] when(...)]", AnyOf(OneOf(1, 2), When(func(int) bool { return true })).String())
	assert.Equal(t, "[1 2]", OneOf(1, 2).String())
	assert.Equal(t, "range(1, 5, 1)", Range(1, 5, 1).String())
	assert.Equal(t, "[1..5]", Between(1, 5).String())
	assert.Equal(t, "default", defaultCase[int]().String())
	assert.Equal(t, "invalid", Key[int]{}.String())
}

func TestFlow_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stop", Stop.String())
	assert.Equal(t, "fallthrough", FallThrough.String())
	assert.Equal(t, "inherit", Inherit.String())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))
	assert.Len(t, GetErrors(ErrNoMatch), 1)
	assert.Len(t, GetErrors(errors.Join(ErrNoMatch, ErrInvalidKey)), 2)
}
