package material

import (
	"context"
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RawMaterialRepository defines the interface for raw material persistence
type RawMaterialRepository interface {
	// FindByID finds a raw material by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*RawMaterial, error)

	// FindByIDs finds multiple raw materials by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]RawMaterial, error)

	// FindAll finds all raw materials matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]RawMaterial, error)

	// Save creates or updates a raw material
	Save(ctx context.Context, m *RawMaterial) error

	// Count counts raw materials matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ManualPriceRepository defines the interface for manual price persistence
type ManualPriceRepository interface {
	// FindByRawMaterial returns the full manual price history of a raw material,
	// newest valid-from first
	FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]ManualPrice, error)

	// FindAsOf returns the manual price row valid on the given date: the row
	// with the latest valid-from not after the date, whose valid-to is open or
	// not before the date. Returns shared.ErrNotFound when no row qualifies.
	FindAsOf(ctx context.Context, rawMaterialID uuid.UUID, date time.Time) (*ManualPrice, error)

	// Save creates or updates a manual price row
	Save(ctx context.Context, p *ManualPrice) error
}
