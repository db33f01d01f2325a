package sw

import "log/slog"

// Flow tells a chained dispatcher what to do after a case runs.
type Flow uint8

const (
	// Inherit uses the dispatcher's default flow.
	Inherit Flow = iota
	// Stop ends the switch after this case.
	Stop
	// FallThrough also runs the next registered case, whatever its key.
	FallThrough
)

func (f Flow) String() string {
	switch f {
	case Stop:
		return "stop"
	case FallThrough:
		return "fallthrough"
	default:
		return "inherit"
	}
}

type Options struct {
	Logger          *slog.Logger
	DefaultFlow     Flow
	MultipleMatches bool
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.DiscardHandler),
		DefaultFlow: Stop,
	}
}

func applyOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return options
}

// WithLogger sends dispatch decisions to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDefaultFlow sets the flow used by cases registered without one.
func WithDefaultFlow(f Flow) Option {
	return func(o *Options) {
		if f != Inherit {
			o.DefaultFlow = f
		}
	}
}

// WithMultipleMatches lets an Immediate dispatcher evaluate every case, not
// only the cases before the first match. Chained dispatchers ignore it.
func WithMultipleMatches() Option {
	return func(o *Options) {
		o.MultipleMatches = true
	}
}

func (o Options) resolve(flow []Flow) Flow {
	if len(flow) == 0 || flow[0] == Inherit {
		return o.DefaultFlow
	}
	return flow[0]
}
