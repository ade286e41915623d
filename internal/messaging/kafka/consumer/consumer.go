package consumer

import (
	"context"
	"encoding/json"

	"sicservitium/internal/bootstrap"
	"sicservitium/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle tails the roster lifecycle topic and writes each
// event to the audit trail. Decode failures are committed and skipped so one
// bad payload never wedges the partition.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var envelope struct {
			EventType string `json:"event_type"`
		}
		if err := json.Unmarshal(msg.Value, &envelope); err != nil {
			log.Error("decode lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		switch envelope.EventType {
		case "employee_created":
			var event events.EmployeeCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Error("decode employee_created event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			auditLogger.Log(ctx, bootstrap.AuditLog{
				Action:  "EMPLOYEE_CREATED",
				Message: "Employee added to the roster",
				Meta: map[string]any{
					"employee_id": event.EmployeeID,
					"matricula":   event.Matricula,
					"request_id":  event.RequestID,
				},
			})

		case "employee_import_completed":
			var event events.EmployeeImportCompletedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Error("decode employee_import_completed event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			auditLogger.Log(ctx, bootstrap.AuditLog{
				Action:  "EMPLOYEE_IMPORT_COMPLETED",
				Message: "Spreadsheet import reconciled",
				Meta: map[string]any{
					"filename":    event.Filename,
					"inserted":    event.Inserted,
					"updated":     event.Updated,
					"error_count": event.ErrorCount,
					"request_id":  event.RequestID,
				},
			})

		default:
			log.Warn("unknown lifecycle event type, skipping",
				zap.String("event_type", envelope.EventType),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
		}
	}
}
