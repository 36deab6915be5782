package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferTier prices a raw material through supplier offers: the batch's
// selection override wins over the raw material's default offer, then the
// chosen offer's price row valid on the pricing date is converted to a
// per-gram price. Any gap (no offer, no price row, zero package size) makes
// the tier miss rather than fail.
type OfferTier struct {
	selectionRepo    batch.SelectionRepository
	defaultOfferRepo supplier.DefaultOfferRepository
	offerRepo        supplier.OfferRepository
	offerPriceRepo   supplier.OfferPriceRepository
}

// NewOfferTier creates the offer pricing tier
func NewOfferTier(
	selectionRepo batch.SelectionRepository,
	defaultOfferRepo supplier.DefaultOfferRepository,
	offerRepo supplier.OfferRepository,
	offerPriceRepo supplier.OfferPriceRepository,
) *OfferTier {
	return &OfferTier{
		selectionRepo:    selectionRepo,
		defaultOfferRepo: defaultOfferRepo,
		offerRepo:        offerRepo,
		offerPriceRepo:   offerPriceRepo,
	}
}

// Resolve implements Resolver
func (t *OfferTier) Resolve(ctx context.Context, batchID, rawMaterialID uuid.UUID, date time.Time) (decimal.Decimal, bool, error) {
	offerID, ok, err := t.chooseOffer(ctx, batchID, rawMaterialID)
	if err != nil || !ok {
		return decimal.Zero, false, err
	}

	offer, err := t.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	price, err := t.offerPriceRepo.FindAsOf(ctx, offer.ID, date)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}

	unit, ok := offer.UnitPrice(price.PricePerPackage)
	return unit, ok, nil
}

// chooseOffer picks the batch selection override when present, otherwise the
// raw material's default offer.
func (t *OfferTier) chooseOffer(ctx context.Context, batchID, rawMaterialID uuid.UUID) (uuid.UUID, bool, error) {
	selections, err := t.selectionRepo.FindByBatch(ctx, batchID)
	if err != nil {
		return uuid.Nil, false, err
	}
	for _, sel := range selections {
		if sel.RawMaterialID == rawMaterialID {
			return sel.OfferID, true, nil
		}
	}

	def, err := t.defaultOfferRepo.FindByRawMaterial(ctx, rawMaterialID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}
	return def.OfferID, true, nil
}
