package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Writer sends written messages to the logger, line by line, with a fixed level.
type Writer struct {
	level  zapcore.Level
	logger *zap.SugaredLogger
}

func (w *Writer) Write(p []byte) (n int, err error) {
	lines := strings.TrimRight(string(p), "\n")
	for _, line := range strings.Split(lines, "\n") {
		msg := strings.TrimRight(line, "\n")
		switch w.level {
		case zapcore.DebugLevel:
			w.logger.Debug(msg)
		case zapcore.InfoLevel:
			w.logger.Info(msg)
		case zapcore.WarnLevel:
			w.logger.Warn(msg)
		default:
			w.logger.Error(msg)
		}
	}
	return len(p), nil
}

func (w *Writer) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

func ToDebugWriter(l *zap.SugaredLogger) *Writer {
	return &Writer{zapcore.DebugLevel, l}
}

func ToInfoWriter(l *zap.SugaredLogger) *Writer {
	return &Writer{zapcore.InfoLevel, l}
}

func ToWarnWriter(l *zap.SugaredLogger) *Writer {
	return &Writer{zapcore.WarnLevel, l}
}
