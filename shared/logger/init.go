package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger initializes the full logger. An empty filepath logs to stderr.
// The level is "warning" by default, "info" when verbose and "debug" when debug is set.
func InitLogger(filepath string, level string, verbose bool, debug bool) error {
	logger := logrus.New()
	logger.Level = logrus.WarnLevel
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: filepath == "",
		FullTimestamp:    true,
	})

	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("Invalid log level %q: %w", level, err)
		}

		logger.Level = parsed
	}

	if verbose && logger.Level < logrus.InfoLevel {
		logger.Level = logrus.InfoLevel
	}

	if debug {
		logger.Level = logrus.DebugLevel
	}

	var out io.Writer = os.Stderr
	if filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("Failed to open log file %q: %w", filepath, err)
		}

		out = f
	}

	logger.SetOutput(out)
	Log = NewLogrusLogger(logger)

	return nil
}
