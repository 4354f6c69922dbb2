package stixgraph

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/stixgraph/graph"
)

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig holds configuration for a Converter instance.
type converterConfig struct {
	mode               graph.Mode
	includeObservables bool
	logger             *slog.Logger
	tracer             trace.Tracer
}

func defaultConfig() *converterConfig {
	return &converterConfig{
		mode:               graph.ModeMulti,
		includeObservables: true,
	}
}

// WithMode selects the graph mode for the session. ModeMulti (the
// default) keeps every edge between a node pair; ModeSimple keeps only
// the last. An invalid mode fails New immediately.
func WithMode(mode graph.Mode) Option {
	return func(c *converterConfig) {
		c.mode = mode
	}
}

// WithObservables controls whether Cyber-observable Objects (and legacy
// embedded observables) are materialized as nodes. Observables are
// included by default.
func WithObservables(include bool) Option {
	return func(c *converterConfig) {
		c.includeObservables = include
	}
}

// WithLogger sets a custom logger for per-object conversion warnings.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *converterConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. When set, Build opens a span
// per bundle with bundle and graph-size attributes.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *converterConfig) {
		c.tracer = tracer
	}
}
