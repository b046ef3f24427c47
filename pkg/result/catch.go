package result

// Supplier is a computation that returns a value or fails.
type Supplier[T any] func() (T, error)

// Func is a one-argument function that returns a value or fails.
type Func[A, R any] func(A) (R, error)

// Consumer is an action on a value that may fail.
type Consumer[T any] func(T) error

// Runnable is an action that may fail.
type Runnable func() error

// Lift converts a fallible function into a total function returning Result.
// A returned error and a panic are both captured as Err.
func Lift[A, R any](fn Func[A, R]) func(A) Result[R] {
	return func(in A) Result[R] {
		out, err := catch(fn, in)
		if err != nil {
			return Err[R](err)
		}
		return Ok(out)
	}
}

// Of runs fn and captures its outcome.
func Of[T any](fn Supplier[T]) Result[T] {
	return Lift[Unit, T](func(Unit) (T, error) {
		return fn()
	})(Unit{})
}

// Run runs fn and captures its outcome as Result[Unit].
func Run(fn Runnable) Result[Unit] {
	return Lift[Unit, Unit](func(Unit) (Unit, error) {
		return Unit{}, fn()
	})(Unit{})
}

// catch is the only place panics are recovered. Err must not be constructed
// here so an interceptor panic is not captured again.
func catch[A, R any](fn Func[A, R], in A) (out R, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero R
			out, err = zero, fromPanic(p)
		}
	}()
	return fn(in)
}
