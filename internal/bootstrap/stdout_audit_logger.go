package bootstrap

import (
	"context"
	"time"

	"github.com/BavyaVasu/leave-management/internal/shared/clock"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through zap under the "audit" name.
type StdoutAuditLogger struct {
	logger *zap.Logger
	clock  clock.Clock
}

func NewStdoutAuditLogger(logger *zap.Logger, clk clock.Clock) *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: logger.Named("audit"), clock: clk}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	md := contextutil.ExtractMetadata(ctx)
	l.logger.Info("audit event",
		zap.String("timestamp", l.clock.Now().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", md.RequestID),
		zap.String("employee_id", md.EmployeeID),
		zap.Any("meta", entry.Meta),
	)
}
