package conn

import (
	"log/slog"

	"github.com/storconn/storconn/pkg/metrics"
)

// Option customizes a Manager at construction time.
type Option func(*settings)

type settings struct {
	logger    *slog.Logger
	collector *metrics.Collector
}

// WithLogger sets the structured logger used for lifecycle transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCollector attaches a metrics collector. Managers without one record
// nothing.
func WithCollector(collector *metrics.Collector) Option {
	return func(s *settings) {
		s.collector = collector
	}
}

func applyOptions(opts []Option) settings {
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
