package supplier

import (
	"context"
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindAll finds all suppliers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, s *Supplier) error

	// Count counts suppliers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// OfferRepository defines the interface for supplier offer persistence
type OfferRepository interface {
	// FindByID finds an offer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Offer, error)

	// FindByRawMaterial returns all offers for a raw material
	FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]Offer, error)

	// FindActiveByRawMaterial returns active offers of active suppliers for a
	// raw material
	FindActiveByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]Offer, error)

	// FindBySupplier returns all offers of a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]Offer, error)

	// Save creates or updates an offer
	Save(ctx context.Context, o *Offer) error
}

// OfferPriceRepository defines the interface for offer price persistence
type OfferPriceRepository interface {
	// FindByOffer returns the full price history of an offer, newest
	// valid-from first
	FindByOffer(ctx context.Context, offerID uuid.UUID) ([]OfferPrice, error)

	// FindAsOf returns the price row valid on the given date: the row with the
	// latest valid-from not after the date, whose valid-to is open or not
	// before the date. Returns shared.ErrNotFound when no row qualifies.
	FindAsOf(ctx context.Context, offerID uuid.UUID, date time.Time) (*OfferPrice, error)

	// Save creates or updates an offer price row
	Save(ctx context.Context, p *OfferPrice) error
}

// DefaultOfferRepository defines the interface for default offer persistence
type DefaultOfferRepository interface {
	// FindByRawMaterial returns the default offer mapping of a raw material.
	// Returns shared.ErrNotFound when none is set.
	FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (*DefaultOffer, error)

	// Set assigns the default offer for a raw material, replacing any
	// existing mapping
	Set(ctx context.Context, rawMaterialID, offerID uuid.UUID) error

	// Clear removes the default offer mapping of a raw material
	Clear(ctx context.Context, rawMaterialID uuid.UUID) error
}
