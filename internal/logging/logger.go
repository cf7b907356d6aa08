package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// defaultLogger is the process-wide logger instance
var defaultLogger *logrus.Logger

// Init initializes the structured JSON logger for the application.
// The level is read from GOALFLOW_LOG_LEVEL (default: warn, so normal CLI
// output stays clean while storage failures are still reported).
func Init() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	logger.SetLevel(logrus.WarnLevel)
	if level := os.Getenv("GOALFLOW_LOG_LEVEL"); level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(lvl)
		}
	}

	defaultLogger = logger
	return logger
}

// Logger returns the process-wide logger, initializing it on first use.
func Logger() *logrus.Logger {
	if defaultLogger == nil {
		return Init()
	}
	return defaultLogger
}

// WithComponent returns an entry tagged with the originating component
// so store and storage failures can be traced to their owner.
func WithComponent(component string) *logrus.Entry {
	return Logger().WithField("component", component)
}

// NewTestLogger returns a logger that discards all output, for use in tests.
func NewTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
