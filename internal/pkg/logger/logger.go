// Package logger provides a structured application logger with a small
// field-helper API so client code never imports the logging framework
// directly.
package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"costera/internal/pkg/models"
)

// AppLogger wraps the underlying logrus logger
type AppLogger struct {
	*logrus.Logger
}

// NewAppLogger creates a logger from configuration
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	switch config.Format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	return &AppLogger{Logger: l}, nil
}

func (al *AppLogger) withFields(fields []Field) *logrus.Entry {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return al.Logger.WithFields(data)
}

// Info logs an info message with structured fields
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.withFields(fields).Info(msg)
}

// Warn logs a warning message with structured fields
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.withFields(fields).Warn(msg)
}

// Error logs an error message with structured fields
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.withFields(fields).Error(msg)
}

// Debug logs a debug message with structured fields
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.withFields(fields).Debug(msg)
}

// Fatal logs a fatal message with structured fields and exits
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.withFields(fields).Fatal(msg)
}
