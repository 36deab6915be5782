package batch

import (
	"context"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TemplateRepository defines the interface for batch template persistence
type TemplateRepository interface {
	// FindByID finds a template by its ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*BatchTemplate, error)

	// FindAll finds all templates matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]BatchTemplate, error)

	// Save creates or updates a template together with its items
	Save(ctx context.Context, t *BatchTemplate) error

	// Count counts templates matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// Repository defines the interface for batch persistence
type Repository interface {
	// FindByID finds a batch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindAll finds all batches matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Batch, error)

	// Save creates or updates a batch
	Save(ctx context.Context, b *Batch) error

	// Count counts batches matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// SelectionRepository defines the interface for supplier selection persistence
type SelectionRepository interface {
	// FindByBatch returns all selection overrides of a batch
	FindByBatch(ctx context.Context, batchID uuid.UUID) ([]SupplierSelection, error)

	// Upsert writes a selection override, replacing any existing row for the
	// same (batch, raw material) pair
	Upsert(ctx context.Context, s *SupplierSelection) error

	// Delete removes the override for a (batch, raw material) pair. Deleting
	// an absent row is not an error.
	Delete(ctx context.Context, batchID, rawMaterialID uuid.UUID) error
}
