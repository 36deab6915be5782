package material

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManualPrice is a fallback per-gram price for a raw material, used when no
// supplier offer resolves a price. Multiple rows per raw material form a
// time-scoped price history.
type ManualPrice struct {
	shared.BaseEntity
	RawMaterialID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PricePerGram  decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	ValidFrom     time.Time       `gorm:"type:date;not null"`
	ValidTo       *time.Time      `gorm:"type:date"` // nil = open-ended
}

// TableName returns the table name for GORM
func (ManualPrice) TableName() string {
	return "raw_material_manual_prices"
}

// NewManualPrice creates a new manual price row
func NewManualPrice(rawMaterialID uuid.UUID, pricePerGram decimal.Decimal, currency string, validFrom time.Time, validTo *time.Time) (*ManualPrice, error) {
	if rawMaterialID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Raw material ID is required")
	}
	if !pricePerGram.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per gram must be positive")
	}
	if currency == "" {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency is required")
	}
	if validTo != nil && validTo.Before(validFrom) {
		return nil, shared.NewDomainError("INVALID_VALIDITY", "Valid-to date cannot precede valid-from date")
	}

	return &ManualPrice{
		BaseEntity:    shared.NewBaseEntity(),
		RawMaterialID: rawMaterialID,
		PricePerGram:  pricePerGram,
		Currency:      currency,
		ValidFrom:     validFrom,
		ValidTo:       validTo,
	}, nil
}

// CoversOn reports whether this price row is valid on the given date
func (p *ManualPrice) CoversOn(date time.Time) bool {
	if p.ValidFrom.After(date) {
		return false
	}
	return p.ValidTo == nil || !p.ValidTo.Before(date)
}
