package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/events"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveStatus turns leave approve/reject events into employee
// notifications. Messages that fail to decode are committed and skipped;
// persistence failures leave the message uncommitted for redelivery.
func ConsumeLeaveStatus(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_status")
	log.Info("leave status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave status consumer stopped")
				return
			}
			log.Error("fetch leave status message failed", zap.Error(err))
			continue
		}

		var event events.LeaveStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave status event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		message := fmt.Sprintf(
			"Your %s leave request (%s to %s, %d days) was %s",
			event.LeaveType, event.StartDate, event.EndDate, event.Days, event.Status,
		)

		if err := notificationService.Record(ctx, event.EmployeeID, notification.KindLeaveDecision, message); err != nil {
			log.Error("record leave decision notification failed",
				zap.String("leave_id", event.LeaveID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave status message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision notification recorded",
			zap.String("leave_id", event.LeaveID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("status", event.Status),
		)
	}
}
