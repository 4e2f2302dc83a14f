package config

import (
	"log/slog"
	"os"

	"github.com/secmon-lab/quill/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
}

// Flags returns CLI flags for Logger configuration
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("QUILL_LOG_LEVEL"),
			Destination: &x.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("QUILL_LOG_FORMAT"),
			Destination: &x.Format,
		},
	}
}

// Configure sets up the logger based on configuration
func (x *Logger) Configure() (*slog.Logger, error) {
	level, err := logging.ParseLevel(x.Level)
	if err != nil {
		return nil, err
	}

	format, err := logging.ParseFormat(x.Format)
	if err != nil {
		return nil, err
	}

	return logging.New(level, os.Stderr, format), nil
}

// LogValue returns structured log value
func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.Level),
		slog.String("format", x.Format),
	)
}
