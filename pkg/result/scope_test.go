package result

import (
	"errors"
	"io"
	"testing"
)

type closable struct {
	closed int
	err    error
}

func (c *closable) Close() error {
	c.closed++
	return c.err
}

type quietClosable struct {
	closed int
}

func (c *quietClosable) Close() {
	c.closed++
}

type panickyClosable struct{}

func (panickyClosable) Close() error {
	panic("close exploded")
}

func TestClose_ReleasesOkValueOnce(t *testing.T) {
	res := &closable{}

	func() {
		r := Ok(res)
		defer r.Close()
	}()

	if res.closed != 1 {
		t.Fatalf("expected exactly one release, got %d", res.closed)
	}
}

func TestClose_SupportsCloseWithoutError(t *testing.T) {
	res := &quietClosable{}

	if err := Ok(res).Close(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if res.closed != 1 {
		t.Fatalf("expected one release, got %d", res.closed)
	}
}

func TestClose_ReleaseFailureIsInterceptedNotReturned(t *testing.T) {
	rec := install(t)
	failure := errors.New("close failed")
	res := &closable{err: failure}

	if err := Ok(res).Close(); err != nil {
		t.Fatalf("expected release failure not to propagate, got %v", err)
	}

	got := rec.all()
	if res.closed != 1 || len(got) != 1 || got[0] != failure {
		t.Fatalf("expected one release and [close failed] intercepted, got closed=%d errs=%v", res.closed, got)
	}
}

func TestClose_ReleasePanicIsIntercepted(t *testing.T) {
	rec := install(t)

	if err := Ok[io.Closer](panickyClosable{}).Close(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	got := rec.all()
	if len(got) != 1 || !PanicError.Has(got[0]) {
		t.Fatalf("expected captured panic to be intercepted, got %v", got)
	}
}

func TestClose_ErrIsNoop(t *testing.T) {
	rec := install(t)
	Err[*closable](errors.New("x")).Close()

	if got := rec.all(); len(got) != 1 {
		t.Fatalf("expected only the Err construction to be intercepted, got %v", got)
	}
}

func TestClose_SkipsNilAndNonClosers(t *testing.T) {
	t.Parallel()
	var nilRes *closable

	if err := Ok(nilRes).Close(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := Ok(5).Close(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestUse(t *testing.T) {
	t.Parallel()
	res := &closable{}

	out := Use(Ok(res), func(c *closable) Result[int] {
		if c.closed != 0 {
			t.Fatalf("resource closed before use")
		}
		return Ok(42)
	})

	if out != Ok(42) || res.closed != 1 {
		t.Fatalf("expected Ok(42) and one release, got %v closed=%d", out, res.closed)
	}
}

func TestUse_ClosesOnPanic(t *testing.T) {
	t.Parallel()
	res := &closable{}

	func() {
		defer func() { _ = recover() }()
		Use(Ok(res), func(*closable) Result[int] { panic("use") })
	}()

	if res.closed != 1 {
		t.Fatalf("expected release on panic exit, got %d", res.closed)
	}
}

func TestUse_ErrSkipsFn(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	out := Use(Err[*closable](boom), func(*closable) Result[int] {
		t.Fatalf("fn must not run for Err")
		return Ok(0)
	})
	if out.Err() != boom {
		t.Fatalf("expected boom, got %v", out)
	}
}
