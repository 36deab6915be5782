package catalog

import (
	"context"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for product persistence
type Repository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, p *Product) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
