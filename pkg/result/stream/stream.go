package stream

import (
	"iter"
	"slices"

	"github.com/ib-77/result/pkg/result"
)

type Handlers[T any] struct {
	OnSuccess func(value T)
	OnFailure func(err error)
}

func Of[T any](values ...T) iter.Seq[T] {
	return slices.Values(values)
}

func FromSlice[T any](values []T) iter.Seq[T] {
	return slices.Values(values)
}

// Lift applies a fallible function to every element, capturing each outcome.
func Lift[A, R any](seq iter.Seq[A], fn result.Func[A, R]) iter.Seq[result.Result[R]] {
	lifted := result.Lift(fn)
	return func(yield func(result.Result[R]) bool) {
		for in := range seq {
			if !yield(lifted(in)) {
				return
			}
		}
	}
}

// Map switches every successful element to the Result produced by f.
// Failed elements pass through unchanged.
func Map[T, R any](seq iter.Seq[result.Result[T]], f func(T) result.Result[R]) iter.Seq[result.Result[R]] {
	return func(yield func(result.Result[R]) bool) {
		for in := range seq {
			if !yield(result.FlatMap(in, f)) {
				return
			}
		}
	}
}

// Values yields the successful values and silently drops failures.
func Values[T any](seq iter.Seq[result.Result[T]]) iter.Seq[T] {
	return ValuesWith(seq, Handlers[T]{})
}

// ValuesWith yields the successful values; every dropped failure is handed to
// handlers.OnFailure.
func ValuesWith[T any](seq iter.Seq[result.Result[T]], handlers Handlers[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for in := range seq {
			if in.IsFailure() {
				if handlers.OnFailure != nil {
					handlers.OnFailure(in.Err())
				}
				continue
			}

			v := in.GetOrZero()
			if handlers.OnSuccess != nil {
				handlers.OnSuccess(v)
			}
			if !yield(v) {
				return
			}
		}
	}
}

func Failures[T any](seq iter.Seq[result.Result[T]]) iter.Seq[error] {
	return func(yield func(error) bool) {
		for in := range seq {
			if in.IsFailure() && !yield(in.Err()) {
				return
			}
		}
	}
}

// Partition drains seq into its successful values and its errors, both in
// encounter order.
func Partition[T any](seq iter.Seq[result.Result[T]]) ([]T, []error) {
	values := make([]T, 0)
	errs := make([]error, 0)
	for in := range seq {
		if v, ok := in.Optional(); ok {
			values = append(values, v)
		} else {
			errs = append(errs, in.Err())
		}
	}
	return values, errs
}

func FirstOrDefault[T any](seq iter.Seq[T], defaultV T) T {
	for v := range seq {
		return v
	}
	return defaultV
}
