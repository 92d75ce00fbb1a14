// Package tracing adapts the packrat engine's optional diagnostics onto
// several third-party observability backends, the way golang.org/x/exp's
// event package adapts a single internal event model onto zap, zerolog,
// logrus, logr and go-kit/log. Both the Logger and Tracer here are
// optional — a ParseContext with neither configured uses NopLogger and
// NopTracer, whose methods do nothing.
package tracing

// Logger is the minimal structured-logging surface the packrat engine
// needs: a single leveled, printf-style sink. Each adapter in this
// package satisfies it over a different third-party logging library.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}

// NopLogger returns a Logger that discards everything, the default for a
// ParseContext that hasn't been given one.
func NopLogger() Logger { return nopLogger{} }

// Tracer opens a span for a named unit of work and returns a function
// that closes it. Named rule matches and top-level parses are the spans
// this package instruments; instrumenting every primitive match would be
// too fine-grained to be useful and too costly to be free when enabled.
type Tracer interface {
	StartSpan(name string) (end func())
}

type nopTracer struct{}

func (nopTracer) StartSpan(string) func() { return func() {} }

// NopTracer returns a Tracer whose spans are free no-ops, the default for
// a ParseContext that hasn't been given one.
func NopTracer() Tracer { return nopTracer{} }
