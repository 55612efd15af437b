package logger

import (
	"log/slog"
	"os"
)

// Logger is a thin slog wrapper shared by the services and the transport
// layers. Embedding keeps the full slog call surface available.
type Logger struct {
	*slog.Logger
}

// New builds a Logger writing text records to stdout. The level maps onto
// slog's numeric levels, so 0 is info and -4 is debug.
func New(level int) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// Fatal logs at error level and terminates the process. Only startup code
// should call it.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
