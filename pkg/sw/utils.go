package sw

import (
	"fmt"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors splits an error built with errors.Join back into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// checkLiteral rejects literals that cannot be stored in the registered set.
// Only interface-typed dispatch values can carry such literals.
func checkLiteral[V comparable](v V) error {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() == reflect.Map {
		return fmt.Errorf("%w: mapping %T has no matching semantics", ErrInvalidKey, v)
	}
	if !rv.Comparable() {
		return fmt.Errorf("%w: %T is not comparable", ErrInvalidKey, v)
	}
	return nil
}
