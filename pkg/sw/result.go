package sw

import (
	"time"

	"github.com/google/uuid"
)

// Result is the value captured when a switch block exits.
// A zero Result has no value; HasResult tells a computed zero value apart from
// one that was never computed.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	hasResult bool
}

func captured[T any](id uuid.UUID, r T) Result[T] {
	return Result[T]{
		id:        id,
		createdAt: time.Now().UTC(),
		result:    r,
		hasResult: true,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) IsEmpty() bool {
	return !r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Id is the id of the dispatcher that produced the result.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}
