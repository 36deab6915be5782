package batch

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the batch context
const (
	EventTypeBatchCreated = "batch.created"
	EventTypeBatchOpened  = "batch.opened"
)

// BatchCreatedEvent is emitted when a batch is instantiated from a template
type BatchCreatedEvent struct {
	shared.BaseDomainEvent
	TemplateID uuid.UUID `json:"template_id"`
}

// NewBatchCreatedEvent creates a new batch created event
func NewBatchCreatedEvent(batchID, templateID uuid.UUID) *BatchCreatedEvent {
	return &BatchCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBatchCreated, "Batch", batchID),
		TemplateID:      templateID,
	}
}

// BatchOpenedEvent is emitted when a batch is opened and its pricing date
// pinned. Re-opening emits the event again with the new date.
type BatchOpenedEvent struct {
	shared.BaseDomainEvent
	PricingDate time.Time `json:"pricing_date"`
}

// NewBatchOpenedEvent creates a new batch opened event
func NewBatchOpenedEvent(batchID uuid.UUID, pricingDate time.Time) *BatchOpenedEvent {
	return &BatchOpenedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBatchOpened, "Batch", batchID),
		PricingDate:     pricingDate,
	}
}
