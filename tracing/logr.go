package tracing

import (
	"fmt"

	"github.com/go-logr/logr"
)

// logrLogger adapts a logr.Logger to Logger. logr has no printf-style
// API by design (it favors structured key/value pairs), so each call is
// formatted first and passed through as a single message — a deliberate
// narrowing, not a missing feature.
type logrLogger struct {
	log logr.Logger
}

// NewLogrLogger wraps an existing logr logger for use as a packrat
// ParseContext's diagnostics sink.
func NewLogrLogger(l logr.Logger) Logger {
	return logrLogger{log: l}
}

func (l logrLogger) Debugf(format string, args ...interface{}) {
	l.log.V(1).Info(fmt.Sprintf(format, args...))
}

func (l logrLogger) Infof(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l logrLogger) Warnf(format string, args ...interface{}) {
	l.log.Error(nil, fmt.Sprintf(format, args...))
}
