package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZeroLogger is the zerolog-backed Logger implementation.
type ZeroLogger struct {
	log zerolog.Logger
}

var _ Logger = (*ZeroLogger)(nil)

// NewZeroLogger returns a configured ZeroLogger writing to w.
func NewZeroLogger(w io.Writer, level Level) *ZeroLogger {
	var zLevel zerolog.Level
	switch level {
	case LevelDebug:
		zLevel = zerolog.DebugLevel
	case LevelInfo:
		zLevel = zerolog.InfoLevel
	case LevelError:
		zLevel = zerolog.ErrorLevel
	case LevelOff:
		zLevel = zerolog.Disabled
	default:
		zLevel = zerolog.InfoLevel
	}

	l := zerolog.New(w).With().Timestamp().Logger().Level(zLevel)
	return &ZeroLogger{log: l}
}

// Debug logs at debug level.
func (l *ZeroLogger) Debug(message string, fields Fields) {
	l.log.Debug().Fields(map[string]interface{}(fields)).Msg(message)
}

// Info logs at info level.
func (l *ZeroLogger) Info(message string, fields Fields) {
	l.log.Info().Fields(map[string]interface{}(fields)).Msg(message)
}

// Error logs the error and any additional properties.
func (l *ZeroLogger) Error(err error, fields Fields) {
	l.log.Error().Fields(map[string]interface{}(fields)).Err(err).Msg(err.Error())
}

// With returns a child logger carrying the given default fields.
func (l *ZeroLogger) With(fields Fields) Logger {
	child := l.log.With().Fields(map[string]interface{}(fields)).Logger()
	return &ZeroLogger{log: child}
}
