package tracing

import "github.com/rs/zerolog"

// zerologLogger adapts a zerolog.Logger to Logger.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog logger for use as a packrat
// ParseContext's diagnostics sink.
func NewZerologLogger(l zerolog.Logger) Logger {
	return zerologLogger{log: l}
}

func (z zerologLogger) Debugf(format string, args ...interface{}) {
	z.log.Debug().Msgf(format, args...)
}

func (z zerologLogger) Infof(format string, args ...interface{}) {
	z.log.Info().Msgf(format, args...)
}

func (z zerologLogger) Warnf(format string, args ...interface{}) {
	z.log.Warn().Msgf(format, args...)
}
