package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adevaproject/webapppro/internal/config"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Init configures the process-wide logger. Repeated calls are no-ops.
func Init(cfg config.LogConfig) {
	once.Do(func() {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var output io.Writer
		switch cfg.Output {
		case "", "stdout":
			output = os.Stdout
		case "stderr":
			output = os.Stderr
		default:
			file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				output = os.Stdout
			} else {
				output = file
			}
		}

		if cfg.Pretty {
			output = zerolog.ConsoleWriter{Out: output, TimeFormat: "2006-01-02 15:04:05"}
		}

		log = zerolog.New(output).With().Timestamp().Logger()
	})
}

// Get returns the logger instance. Before Init it is a usable zero-value
// logger writing nowhere useful, so call Init first in main.
func Get() *zerolog.Logger {
	return &log
}
