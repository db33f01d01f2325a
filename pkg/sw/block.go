package sw

// Do runs body as a switch block around a chained dispatcher for value.
// An error returned by body is passed back unchanged and the block is not
// resolved. Otherwise the block exits and the captured result is returned.
func Do[V comparable, R any](value V, body func(s *Switch[V, R]) error, opts ...Option) (R, error) {
	s := New[V, R](value, opts...)
	return exit[R](s, body(s))
}

// DoImmediate is Do for an Immediate dispatcher.
func DoImmediate[V comparable, R any](value V, body func(s *Immediate[V, R]) error, opts ...Option) (R, error) {
	s := NewImmediate[V, R](value, opts...)
	return exit[R](s, body(s))
}

func exit[R any](r Resolver[R], bodyErr error) (R, error) {
	if bodyErr != nil {
		var zero R
		return zero, bodyErr
	}
	if err := r.Close(); err != nil {
		var zero R
		return zero, err
	}
	return r.Result()
}
