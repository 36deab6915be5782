package supplier

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer represents a supplier's offer for a raw material: a purchasable
// package of a fixed size. Prices live in OfferPrice rows so an offer can
// carry a time-scoped price history.
type Offer struct {
	shared.BaseAggregateRoot
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	RawMaterialID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PackageSize   decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	PackageUnit   string          `gorm:"type:varchar(20);not null"`
	SKU           string          `gorm:"type:varchar(100)"`
	Link          string          `gorm:"type:varchar(500)"`
	IsActive      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Offer) TableName() string {
	return "supplier_offers"
}

// NewOffer creates a new supplier offer
func NewOffer(supplierID, rawMaterialID uuid.UUID, packageSize decimal.Decimal, packageUnit, sku, link string) (*Offer, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Supplier ID is required")
	}
	if rawMaterialID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Raw material ID is required")
	}
	if !packageSize.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PACKAGE_SIZE", "Package size must be positive")
	}
	if packageUnit == "" {
		return nil, shared.NewDomainError("INVALID_PACKAGE_UNIT", "Package unit cannot be empty")
	}

	return &Offer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierID:        supplierID,
		RawMaterialID:     rawMaterialID,
		PackageSize:       packageSize,
		PackageUnit:       packageUnit,
		SKU:               sku,
		Link:              link,
		IsActive:          true,
	}, nil
}

// Update updates the offer's package details
func (o *Offer) Update(packageSize decimal.Decimal, packageUnit, sku, link string) error {
	if !packageSize.IsPositive() {
		return shared.NewDomainError("INVALID_PACKAGE_SIZE", "Package size must be positive")
	}
	if packageUnit == "" {
		return shared.NewDomainError("INVALID_PACKAGE_UNIT", "Package unit cannot be empty")
	}

	o.PackageSize = packageSize
	o.PackageUnit = packageUnit
	o.SKU = sku
	o.Link = link
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Activate marks the offer as active
func (o *Offer) Activate() {
	o.IsActive = true
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Deactivate marks the offer as inactive
func (o *Offer) Deactivate() {
	o.IsActive = false
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// UnitPrice converts a package price into a per-unit price. A zero or
// negative package size yields no price rather than a division error.
func (o *Offer) UnitPrice(pricePerPackage decimal.Decimal) (decimal.Decimal, bool) {
	if !o.PackageSize.IsPositive() {
		return decimal.Zero, false
	}
	return pricePerPackage.Div(o.PackageSize), true
}

// OfferPrice is a time-scoped package price for a supplier offer.
type OfferPrice struct {
	shared.BaseEntity
	OfferID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	PricePerPackage decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	ValidFrom       time.Time       `gorm:"type:date;not null"`
	ValidTo         *time.Time      `gorm:"type:date"` // nil = open-ended
}

// TableName returns the table name for GORM
func (OfferPrice) TableName() string {
	return "supplier_offer_prices"
}

// NewOfferPrice creates a new offer price row
func NewOfferPrice(offerID uuid.UUID, pricePerPackage decimal.Decimal, currency string, validFrom time.Time, validTo *time.Time) (*OfferPrice, error) {
	if offerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Offer ID is required")
	}
	if !pricePerPackage.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Package price must be positive")
	}
	if currency == "" {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency is required")
	}
	if validTo != nil && validTo.Before(validFrom) {
		return nil, shared.NewDomainError("INVALID_VALIDITY", "Valid-to date cannot precede valid-from date")
	}

	return &OfferPrice{
		BaseEntity:      shared.NewBaseEntity(),
		OfferID:         offerID,
		PricePerPackage: pricePerPackage,
		Currency:        currency,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
	}, nil
}

// CoversOn reports whether this price row is valid on the given date
func (p *OfferPrice) CoversOn(date time.Time) bool {
	if p.ValidFrom.After(date) {
		return false
	}
	return p.ValidTo == nil || !p.ValidTo.Before(date)
}

// DefaultOffer marks one offer as the default source for a raw material.
// At most one row exists per raw material.
type DefaultOffer struct {
	shared.BaseEntity
	RawMaterialID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	OfferID       uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (DefaultOffer) TableName() string {
	return "raw_material_default_offers"
}

// NewDefaultOffer creates a new default offer mapping
func NewDefaultOffer(rawMaterialID, offerID uuid.UUID) (*DefaultOffer, error) {
	if rawMaterialID == uuid.Nil || offerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Raw material ID and offer ID are required")
	}
	return &DefaultOffer{
		BaseEntity:    shared.NewBaseEntity(),
		RawMaterialID: rawMaterialID,
		OfferID:       offerID,
	}, nil
}
