package result

import (
	"go.uber.org/atomic"
)

// Interceptor observes the error of every Err construction.
type Interceptor func(error)

var interceptor atomic.Pointer[Interceptor]

// WithInterceptor installs i process-wide and returns the previously
// installed interceptor, or nil. Installing nil disables observation.
func WithInterceptor(i Interceptor) Interceptor {
	var next *Interceptor
	if i != nil {
		next = &i
	}
	if prev := interceptor.Swap(next); prev != nil {
		return *prev
	}
	return nil
}

func currentInterceptor() Interceptor {
	if p := interceptor.Load(); p != nil {
		return *p
	}
	return nil
}
