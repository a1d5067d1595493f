package contextutil

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// contextKey is private so keys never collide with other packages.
type contextKey string

const (
	requestIDKey  contextKey = "request_id"
	employeeIDKey contextKey = "employee_id"
	loggerKey     contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithEmployeeID stores the authenticated employee on the context.
func WithEmployeeID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, employeeIDKey, id)
}

// GetEmployeeID returns the authenticated employee and whether one is set.
func GetEmployeeID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(employeeIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, then defaultLogger, then a nop
// logger. It never returns nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}

// Metadata holds the tracing fields that are attached to events and logs.
type Metadata struct {
	RequestID  string
	EmployeeID string
}

func ExtractMetadata(ctx context.Context) Metadata {
	md := Metadata{RequestID: GetRequestID(ctx)}
	if id, ok := GetEmployeeID(ctx); ok {
		md.EmployeeID = id.String()
	}
	return md
}
