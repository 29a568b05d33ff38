package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// logWriter возвращает writer в файл + stderr. Пустой file или ошибка открытия — только stderr.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// ParseLevel переводит строку (debug, info, warn, error) в уровень slog. Неизвестное — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер с текстовым выводом в stderr и уровнем Info.
func New() *slog.Logger {
	return NewWithLevel("info", "")
}

// NewWithLevel возвращает логгер с заданным уровнем; при непустом file пишет ещё и в файл.
func NewWithLevel(level, file string) *slog.Logger {
	return newLogger(logWriter(file), level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
