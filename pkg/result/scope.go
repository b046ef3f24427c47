package result

import (
	"io"
	"reflect"
)

// Close releases the value of an Ok if it is an io.Closer or has a Close()
// method. A release failure is captured as an Err, so the installed
// interceptor sees it, and is never returned. Close on an Err does nothing.
//
// Close always returns nil; the error result lets a Result be used where an
// io.Closer is expected.
func (r Result[T]) Close() error {
	if r.IsFailure() || isNil(r.value) {
		return nil
	}

	switch c := any(r.value).(type) {
	case io.Closer:
		Run(c.Close)
	case interface{ Close() }:
		Run(func() error {
			c.Close()
			return nil
		})
	}
	return nil
}

// Use runs fn with the value of input and closes input afterwards, whichever
// way fn exits. An Err is propagated without calling fn.
func Use[T, R any](input Result[T], fn func(T) Result[R]) Result[R] {
	defer input.Close()
	return FlatMap(input, fn)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
