package audit

import (
	"context"
	"encoding/json"
	"time"

	auditRepo "aurora/database/repository/audit"
	"aurora/models"

	"go.uber.org/zap"
)

// Recorder appends events to the audit trail.
type Recorder interface {
	Record(ctx context.Context, event models.AuditEvent)
}

// DefaultRecorder writes events to the audit repository and publishes them to
// the Kafka audit topic. Publishing is fire-and-forget; a nil producer
// disables it.
type DefaultRecorder struct {
	Repo     auditRepo.AuditRepository
	Producer KafkaProducer
	Topic    string
	Logger   *zap.Logger
}

// Record stores the event. Storage failures are logged, not propagated; the
// triggering operation has already succeeded.
func (r *DefaultRecorder) Record(ctx context.Context, event models.AuditEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	if _, err := r.Repo.Append(ctx, event); err != nil {
		r.Logger.Error("audit: failed to store event",
			zap.String("action", event.Action), zap.Error(err))
	}

	if r.Producer == nil {
		return
	}
	go r.publish(event)
}

func (r *DefaultRecorder) publish(event models.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(event)
	if err != nil {
		r.Logger.Error("audit: failed to marshal event", zap.Error(err))
		return
	}
	if err := r.Producer.SendMessage(ctx, r.Topic, []byte(event.Entity), payload); err != nil {
		r.Logger.Error("audit: failed to publish event", zap.Error(err))
	}
}
