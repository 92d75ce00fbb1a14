package tracing

import (
	"fmt"

	kitlog "github.com/go-kit/kit/log"
)

// gokitLogger adapts a go-kit log.Logger (a bare "Log(keyvals...) error"
// interface) to Logger.
type gokitLogger struct {
	log kitlog.Logger
}

// NewGoKitLogger wraps an existing go-kit logger for use as a packrat
// ParseContext's diagnostics sink.
func NewGoKitLogger(l kitlog.Logger) Logger {
	return gokitLogger{log: l}
}

func (g gokitLogger) Debugf(format string, args ...interface{}) {
	g.log.Log("level", "debug", "msg", fmt.Sprintf(format, args...))
}

func (g gokitLogger) Infof(format string, args ...interface{}) {
	g.log.Log("level", "info", "msg", fmt.Sprintf(format, args...))
}

func (g gokitLogger) Warnf(format string, args ...interface{}) {
	g.log.Log("level", "warn", "msg", fmt.Sprintf(format, args...))
}
