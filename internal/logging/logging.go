package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup builds the process logger: human-readable console output plus an
// optional rotating file. An unparsable level falls back to info.
func Setup(level, file string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var writer io.Writer = console
	if file != "" {
		_ = os.MkdirAll(filepath.Dir(file), 0o755)
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		writer = zerolog.MultiLevelWriter(console, rotating)
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.New(writer).With().Timestamp().Logger().Level(parsed)
	log.Logger = logger
	return logger
}
