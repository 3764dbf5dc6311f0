// Package observability builds the kennel logger from the logging section of
// the configuration.
package observability

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/kennel/internal/config"
)

// LoggerName is the root name every kennel log entry carries.
const LoggerName = "kennel"

// formats maps a configured log format to the zap preset it starts from.
var formats = map[string]func() zap.Config{
	"json": func() zap.Config {
		c := zap.NewProductionConfig()
		// Stat changes repeat the same message rapidly; keep every entry.
		c.Sampling = nil
		return c
	},
	"console": func() zap.Config {
		c := zap.NewDevelopmentConfig()
		c.DisableStacktrace = true
		c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return c
	},
}

// Formats returns the accepted log format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewLogger builds the kennel logger for cfg. An empty cfg.Output writes to
// the preset's default sink; errors from zap itself always go to stderr.
//
// Precondition: cfg.Level must parse as a zapcore level; cfg.Format must be one of Formats().
// Postcondition: Returns a logger named LoggerName, or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	preset, ok := formats[cfg.Format]
	if !ok {
		return nil, fmt.Errorf("log format %q: want one of %s", cfg.Format, strings.Join(Formats(), ", "))
	}

	zc := preset()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.Output != "" {
		zc.OutputPaths = []string{cfg.Output}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building %s logger: %w", cfg.Format, err)
	}
	return logger.Named(LoggerName), nil
}
