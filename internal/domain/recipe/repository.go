package recipe

import (
	"context"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for recipe persistence
type Repository interface {
	// FindByID finds a recipe by its ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// FindByIDs finds multiple recipes by their IDs, items included
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Recipe, error)

	// FindAll finds all recipes matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Recipe, error)

	// Save creates or updates a recipe together with its items
	Save(ctx context.Context, r *Recipe) error

	// Count counts recipes matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
