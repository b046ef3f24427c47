package result

import (
	"fmt"
)

// Result is either Ok with a value or Err with a non-nil error.
// The zero Result is Ok holding the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Unit is the value of a successful procedure.
type Unit struct{}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a failed Result and notifies the installed interceptor.
// It panics if err is nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	if intercept := currentInterceptor(); intercept != nil {
		intercept(err)
	}
	return Result[T]{err: err}
}

// From converts a (value, error) pair into a Result.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// propagate carries an existing failure to another value type. It is not a
// new construction, so the interceptor is not called again.
func propagate[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Err returns the carried error, or nil for Ok.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
