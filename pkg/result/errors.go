package result

import (
	"github.com/zeebo/errs"
)

var (
	// Error is the class of errors synthesized by this package.
	Error = errs.Class("result")

	// PanicError is the class of errors captured from a panicking computation.
	PanicError = errs.Class("panic")

	// ErrNoSuchElement is carried by a Result rejected by Filter.
	ErrNoSuchElement = Error.New("no such element")
)

// thrown is the panic value raised by MustGet, so that a capture boundary
// can recover the original error untouched.
type thrown struct {
	err error
}

func (t *thrown) Error() string {
	return t.err.Error()
}

func (t *thrown) Unwrap() error {
	return t.err
}

func fromPanic(p any) error {
	switch v := p.(type) {
	case *thrown:
		return v.err
	case error:
		return PanicError.Wrap(v)
	default:
		return PanicError.New("%v", v)
	}
}
