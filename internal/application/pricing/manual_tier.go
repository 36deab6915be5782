package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManualTier prices a raw material from its manually maintained per-gram
// price history, as of the pricing date.
type ManualTier struct {
	manualPriceRepo material.ManualPriceRepository
}

// NewManualTier creates the manual pricing tier
func NewManualTier(manualPriceRepo material.ManualPriceRepository) *ManualTier {
	return &ManualTier{manualPriceRepo: manualPriceRepo}
}

// Resolve implements Resolver
func (t *ManualTier) Resolve(ctx context.Context, _ uuid.UUID, rawMaterialID uuid.UUID, date time.Time) (decimal.Decimal, bool, error) {
	price, err := t.manualPriceRepo.FindAsOf(ctx, rawMaterialID, date)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	return price.PricePerGram, true, nil
}
