package tracing

import "go.uber.org/zap"

// zapLogger adapts a *zap.SugaredLogger to Logger, the same role
// golang.org/x/exp/event/adapter/zap plays for its own event model.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps an existing zap logger for use as a packrat
// ParseContext's diagnostics sink.
func NewZapLogger(l *zap.Logger) Logger {
	return zapLogger{sugar: l.Sugar()}
}

func (z zapLogger) Debugf(format string, args ...interface{}) { z.sugar.Debugf(format, args...) }
func (z zapLogger) Infof(format string, args ...interface{})  { z.sugar.Infof(format, args...) }
func (z zapLogger) Warnf(format string, args ...interface{})  { z.sugar.Warnf(format, args...) }
