package sw

import "time"

type ResultProvider[T any] interface {
	// Result returns the captured value
	Result() T
	// CreatedAt time of capture (UTC)
	CreatedAt() time.Time
	// HasResult reports whether a value was captured
	HasResult() bool
}

// Resolver is implemented by both dispatchers. It is what a scoped block needs
// at exit.
type Resolver[R any] interface {
	// Close exits the block: resolves pending actions or reports a missing match
	Close() error
	// Result returns the captured value or ErrResultNotReady
	Result() (R, error)
	// Outcome returns the captured Result
	Outcome() Result[R]
	// Matched reports whether any case (or the default) matched so far
	Matched() bool
}

var (
	_ ResultProvider[int] = Result[int]{}
	_ Resolver[int]       = (*Switch[string, int])(nil)
	_ Resolver[int]       = (*Immediate[string, int])(nil)
)
