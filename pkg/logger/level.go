package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

func getLevelMap() map[string]slog.Level {
	return map[string]slog.Level{
		LevelDebug: slog.LevelDebug,
		LevelInfo:  slog.LevelInfo,
		LevelWarn:  slog.LevelWarn,
		LevelError: slog.LevelError,
	}
}

func parseLevel(l string) slog.Level {
	if level, ok := getLevelMap()[strings.ToLower(l)]; ok {
		return level
	}
	return slog.LevelInfo
}

func validLevel(value any) error {
	s, _ := value.(string)
	if _, ok := getLevelMap()[strings.ToLower(s)]; !ok {
		return fmt.Errorf("invalid log level: %s", s)
	}
	return nil
}

func validFormat(value any) error {
	s, _ := value.(string)
	switch strings.ToLower(s) {
	case FormatJSON, FormatText:
		return nil
	default:
		return errors.New("invalid logger format")
	}
}
