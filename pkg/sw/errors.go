package sw

import "errors"

var (
	ErrInvalidKey     = errors.New("invalid case key")
	ErrInvalidAction  = errors.New("invalid case action")
	ErrDuplicateCase  = errors.New("duplicate case")
	ErrNoMatch        = errors.New("value does not match any case and there is no default case")
	ErrResultNotReady = errors.New("no result has been computed, the switch block has not exited")
	ErrInvalidRange   = errors.New("invalid range")
	ErrClosed         = errors.New("switch block already exited")
)
