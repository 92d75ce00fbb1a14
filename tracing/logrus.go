package tracing

import "github.com/sirupsen/logrus"

// logrusLogger adapts a *logrus.Logger to Logger.
type logrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger wraps an existing logrus logger for use as a packrat
// ParseContext's diagnostics sink.
func NewLogrusLogger(l *logrus.Logger) Logger {
	return logrusLogger{log: l}
}

func (l logrusLogger) Debugf(format string, args ...interface{}) { l.log.Debugf(format, args...) }
func (l logrusLogger) Infof(format string, args ...interface{})  { l.log.Infof(format, args...) }
func (l logrusLogger) Warnf(format string, args ...interface{})  { l.log.Warnf(format, args...) }
