package utils

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

type Fields = logrus.Fields

const (
	CorrelationIDKey contextKey = "correlation_id"
	RequestIDKey     contextKey = "request_id"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()

	// Structured JSON output, same field names across services
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	l.SetLevel(logrus.InfoLevel)
	l.SetOutput(os.Stdout)

	return l
}

// ConfigureLogger applies the configured level. Unknown levels fall back to info.
func ConfigureLogger(level string) {
	if level == "" {
		return
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level %s, defaulting to info", level)
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}

// SetLogOutput redirects log output, mostly useful in tests.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func GetLogger() *logrus.Logger {
	return logger
}

func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func GenerateCorrelationID() string {
	return uuid.New().String()
}

func GenerateRequestID() string {
	return "req_" + uuid.New().String()
}

func LoggerFromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logger)

	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		entry = entry.WithField("correlation_id", correlationID)
	}

	if requestID := GetRequestID(ctx); requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	return entry
}

func withFields(entry *logrus.Entry, fields []logrus.Fields) *logrus.Entry {
	for _, f := range fields {
		entry = entry.WithFields(f)
	}
	return entry
}

func LogInfo(ctx context.Context, message string, fields ...logrus.Fields) {
	withFields(LoggerFromContext(ctx), fields).Info(message)
}

func LogError(ctx context.Context, message string, err error, fields ...logrus.Fields) {
	withFields(LoggerFromContext(ctx).WithError(err), fields).Error(message)
}

func LogWarn(ctx context.Context, message string, fields ...logrus.Fields) {
	withFields(LoggerFromContext(ctx), fields).Warn(message)
}

func LogDebug(ctx context.Context, message string, fields ...logrus.Fields) {
	withFields(LoggerFromContext(ctx), fields).Debug(message)
}
