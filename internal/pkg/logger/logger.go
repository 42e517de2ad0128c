package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — настройки логгера. Переменные: CALCULATOR_LOG_LEVEL, CALCULATOR_LOG_FILE.
type Config struct {
	Level string `envconfig:"LEVEL" default:"info"`
	File  string `envconfig:"FILE" default:"app.log"`
}

// logWriter открывает файл логов и возвращает writer в файл + stderr (и в файл, и в консоль).
// Пустое имя файла или ошибка открытия — только stderr.
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

// ParseLevel переводит строку из конфига в slog.Level (debug, info, warn, error). Неизвестное — info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер с текстовым выводом в файл из конфига и в stderr.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(logWriter(cfg.File), cfg.Level)
}

// NewWithWriter возвращает логгер с заданным уровнем, пишущий в w.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
