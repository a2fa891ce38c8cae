package logger

// Fields carries structured log properties.
type Fields map[string]interface{}

// Logger is the logging contract used across the application.
type Logger interface {
	Debug(message string, fields Fields)
	Info(message string, fields Fields)
	Error(err error, fields Fields)
	With(fields Fields) Logger
}

type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return ""
	}
}
