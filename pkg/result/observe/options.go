package observe

import "go.uber.org/zap/zapcore"

const DefaultMessage = "result failure"

type Options struct {
	Level       zapcore.Level
	Message     string
	IncidentIDs bool
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Level:       zapcore.WarnLevel,
		Message:     DefaultMessage,
		IncidentIDs: true,
	}
}

func WithLevel(level zapcore.Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

func WithMessage(msg string) Option {
	return func(o *Options) {
		o.Message = msg
	}
}

// WithoutIncidentIDs drops the per-failure incident field.
func WithoutIncidentIDs() Option {
	return func(o *Options) {
		o.IncidentIDs = false
	}
}
