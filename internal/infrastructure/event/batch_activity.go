package event

import (
	"context"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BatchActivityLogger writes a structured log line for every batch lifecycle
// event, giving an audit trail of when batches were created and opened.
type BatchActivityLogger struct {
	logger *zap.Logger
}

// NewBatchActivityLogger creates a new BatchActivityLogger
func NewBatchActivityLogger(logger *zap.Logger) *BatchActivityLogger {
	return &BatchActivityLogger{logger: logger.Named("batch-activity")}
}

// Handle logs the batch event
func (h *BatchActivityLogger) Handle(_ context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *batch.BatchCreatedEvent:
		h.logger.Info("batch created",
			zap.String("batch_id", e.AggregateID().String()),
			zap.String("template_id", e.TemplateID.String()),
		)
	case *batch.BatchOpenedEvent:
		h.logger.Info("batch opened",
			zap.String("batch_id", e.AggregateID().String()),
			zap.String("pricing_date", e.PricingDate.Format("2006-01-02")),
		)
	}
	return nil
}

// EventTypes returns the batch lifecycle event types
func (h *BatchActivityLogger) EventTypes() []string {
	return []string{batch.EventTypeBatchCreated, batch.EventTypeBatchOpened}
}

var _ shared.EventHandler = (*BatchActivityLogger)(nil)
