package bootstrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/contextutil"
)

// StdoutAuditLogger writes audit entries through zap. It is the default
// sink; a real deployment can swap in one backed by durable storage.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutAuditLogger{logger: l}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	md := contextutil.ExtractMetadata(ctx)
	l.logger.Info("audit event",
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", md.RequestID),
		zap.String("user_id", md.UserID),
		zap.String("role", md.Role),
		zap.Any("meta", entry.Meta),
	)
}
