package batch

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Status represents the lifecycle state of a batch
type Status string

const (
	StatusPlanned Status = "PLANNED"
	StatusOpen    Status = "OPEN"
)

// Batch is one production run instantiated from a template. Opening a batch
// pins the pricing date every cost computation for that batch is scoped to.
type Batch struct {
	shared.BaseAggregateRoot
	TemplateID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      Status     `gorm:"type:varchar(20);not null;default:'PLANNED'"`
	PricingDate *time.Time `gorm:"type:date"` // nil while PLANNED
}

// TableName returns the table name for GORM
func (Batch) TableName() string {
	return "batches"
}

// NewBatch creates a new batch in PLANNED status
func NewBatch(templateID uuid.UUID) (*Batch, error) {
	if templateID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Template ID is required")
	}

	b := &Batch{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TemplateID:        templateID,
		Status:            StatusPlanned,
	}
	b.AddDomainEvent(NewBatchCreatedEvent(b.ID, templateID))
	return b, nil
}

// Open transitions the batch to OPEN and pins the pricing date. Calling Open
// on an already OPEN batch re-pins the pricing date to the given day.
func (b *Batch) Open(at time.Time) {
	day := DateOnly(at)
	b.Status = StatusOpen
	b.PricingDate = &day
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	b.AddDomainEvent(NewBatchOpenedEvent(b.ID, day))
}

// IsOpen reports whether the batch has been opened
func (b *Batch) IsOpen() bool {
	return b.Status == StatusOpen
}

// EffectivePricingDate returns the pinned pricing date, or the given fallback
// day when the batch is still PLANNED.
func (b *Batch) EffectivePricingDate(fallback time.Time) time.Time {
	if b.PricingDate != nil {
		return *b.PricingDate
	}
	return DateOnly(fallback)
}

// DateOnly truncates a timestamp to its calendar day in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
