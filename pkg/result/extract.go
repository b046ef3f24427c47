package result

import (
	"iter"
)

// Get returns the value and the carried error, Go style.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// MustGet returns the value of an Ok and panics with the carried error of an
// Err. A capture boundary (Of, Lift, ...) recovers that panic as the same error.
func (r Result[T]) MustGet() T {
	if r.IsFailure() {
		panic(&thrown{err: r.err})
	}
	return r.value
}

// GetOrZero returns the value, or the zero value of T for an Err.
func (r Result[T]) GetOrZero() T {
	if r.IsFailure() {
		var zero T
		return zero
	}
	return r.value
}

func (r Result[T]) GetOrDefault(defaultValue T) T {
	if r.IsFailure() {
		return defaultValue
	}
	return r.value
}

func (r Result[T]) GetOrElse(f func(error) T) T {
	if r.IsFailure() {
		return f(r.err)
	}
	return r.value
}

// Optional returns the value and true for Ok; the error is dropped for Err.
func (r Result[T]) Optional() (T, bool) {
	if r.IsFailure() {
		var zero T
		return zero, false
	}
	return r.value, true
}

// All returns a sequence of exactly one value for Ok and no values for Err.
// The error is dropped; pair with OnFailure to observe it.
func (r Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.IsSuccess() {
			yield(r.value)
		}
	}
}
