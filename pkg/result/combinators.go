package result

// Map transforms a successful value. f must not fail; a panic in f is not
// captured, use MapCatching for fallible transforms.
func Map[T, R any](input Result[T], f func(T) R) Result[R] {
	if input.IsSuccess() {
		return Ok(f(input.value))
	}
	return propagate[R](input.err)
}

// MapCatching transforms a successful value with a fallible function.
func MapCatching[T, R any](input Result[T], f Func[T, R]) Result[R] {
	if input.IsSuccess() {
		return Lift(f)(input.value)
	}
	return propagate[R](input.err)
}

// FlatMap switches to the Result produced by f. The Result returned by f is
// the final result; it is not wrapped again.
func FlatMap[T, R any](input Result[T], f func(T) Result[R]) Result[R] {
	if input.IsSuccess() {
		return f(input.value)
	}
	return propagate[R](input.err)
}

// Fold eliminates a Result by calling exactly one of the handlers.
func Fold[T, R any](input Result[T], onSuccess func(T) R, onError func(error) R) R {
	if input.IsSuccess() {
		return onSuccess(input.value)
	}
	return onError(input.err)
}

// Filter keeps a successful value that satisfies predicate. A rejected value
// becomes Err(ErrNoSuchElement).
func (r Result[T]) Filter(predicate func(T) bool) Result[T] {
	if r.IsSuccess() && !predicate(r.value) {
		return Err[T](ErrNoSuchElement)
	}
	return r
}

// OnSuccess calls consumer with the value of an Ok and returns r unchanged.
func (r Result[T]) OnSuccess(consumer func(T)) Result[T] {
	if r.IsSuccess() {
		consumer(r.value)
	}
	return r
}

// OnFailure calls consumer with the error of an Err and returns r unchanged.
func (r Result[T]) OnFailure(consumer func(error)) Result[T] {
	if r.IsFailure() {
		consumer(r.err)
	}
	return r
}

// OnSuccessCatching calls a fallible consumer with the value of an Ok.
// If the consumer fails, the Ok becomes Err with the captured error.
func (r Result[T]) OnSuccessCatching(consumer Consumer[T]) Result[T] {
	if r.IsFailure() {
		return r
	}
	return Lift[T, T](func(v T) (T, error) {
		return v, consumer(v)
	})(r.value)
}

// Recover replaces an Err with Ok(f(err)).
func (r Result[T]) Recover(f func(error) T) Result[T] {
	if r.IsFailure() {
		return Ok(f(r.err))
	}
	return r
}

// RecoverCatching replaces an Err with the captured outcome of f. If f fails,
// its error replaces the original one.
func (r Result[T]) RecoverCatching(f Func[error, T]) Result[T] {
	if r.IsFailure() {
		return Lift(f)(r.err)
	}
	return r
}
