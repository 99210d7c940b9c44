package config

import (
	"log/slog"
	"os"
	"strings"
)

type logConfig struct {
	Level string `yaml:"level"`
}

// registerLogger sets the process default logger. Logs go to stderr;
// stdout carries the stdio JSON-RPC transport and must stay clean.
func (c *Config) registerLogger(f *configFile) error {
	level := slog.LevelInfo

	val := f.Log.Level

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		val = v
	}

	switch strings.ToLower(val) {
	case "debug":
		level = slog.LevelDebug

	case "", "info":
		level = slog.LevelInfo

	case "warn", "warning":
		level = slog.LevelWarn

	case "error":
		level = slog.LevelError
	}

	if v, ok := os.LookupEnv("DEBUG"); ok && v != "" && v != "0" && !strings.EqualFold(v, "false") {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))

	return nil
}
