package logger

import (
	"bytes"
	"context"
)

// stdWriter adapts the Logger to io.Writer so it can back a standard library
// log.Logger, which http.Server.ErrorLog and friends expect.
type stdWriter struct {
	logger *Logger
	level  Level
}

func (s *stdWriter) Write(p []byte) (n int, err error) {
	msg := string(bytes.TrimRight(p, "\n"))

	switch s.level {
	case LevelDebug:
		s.logger.Debug(context.Background(), msg)
	case LevelWarn:
		s.logger.Warn(context.Background(), msg)
	case LevelError:
		s.logger.Error(context.Background(), msg)
	default:
		s.logger.Info(context.Background(), msg)
	}

	return len(p), nil
}
