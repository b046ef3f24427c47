package observe

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/result/pkg/result"
)

// Logger returns an interceptor writing one entry per Err construction.
// Each entry carries the error, whether it was captured from a panic and,
// unless disabled, a fresh incident id.
func Logger(logger *zap.Logger, opts ...Option) result.Interceptor {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return func(err error) {
		ce := logger.Check(options.Level, options.Message)
		if ce == nil {
			return
		}

		fields := []zap.Field{
			zap.Error(err),
			zap.Bool("panic", result.PanicError.Has(err)),
		}
		if options.IncidentIDs {
			fields = append(fields, zap.String("incident", uuid.NewString()))
		}
		ce.Write(fields...)
	}
}

// Tee fans an error out to every non-nil interceptor, in order.
func Tee(interceptors ...result.Interceptor) result.Interceptor {
	return func(err error) {
		for _, i := range interceptors {
			if i != nil {
				i(err)
			}
		}
	}
}

// Install sets i as the process-wide interceptor and returns a func
// restoring the one it replaced.
func Install(i result.Interceptor) (restore func()) {
	prev := result.WithInterceptor(i)
	return func() {
		result.WithInterceptor(prev)
	}
}
