package supplier

import (
	"time"

	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CreateSupplierRequest represents a request to create a supplier
type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
	Notes        string `json:"notes" binding:"max=2000"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=200"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
	Notes        string `json:"notes" binding:"max=2000"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Notes        string    `json:"notes"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Version      int       `json:"version"`
}

// ToSupplierResponse converts a supplier aggregate to its response
func ToSupplierResponse(s *supplier.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Notes:        s.Notes,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Version:      s.GetVersion(),
	}
}

// SupplierListFilter represents filter options for the supplier list
type SupplierListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CreateOfferRequest represents a request to create a supplier offer
type CreateOfferRequest struct {
	SupplierID    uuid.UUID       `json:"supplier_id" binding:"required"`
	RawMaterialID uuid.UUID       `json:"raw_material_id" binding:"required"`
	PackageSize   decimal.Decimal `json:"package_size" binding:"required"`
	PackageUnit   string          `json:"package_unit" binding:"required,min=1,max=20"`
	SKU           string          `json:"sku" binding:"max=100"`
	Link          string          `json:"link" binding:"omitempty,url,max=500"`
}

// UpdateOfferRequest represents a request to update a supplier offer
type UpdateOfferRequest struct {
	PackageSize decimal.Decimal `json:"package_size" binding:"required"`
	PackageUnit string          `json:"package_unit" binding:"required,min=1,max=20"`
	SKU         string          `json:"sku" binding:"max=100"`
	Link        string          `json:"link" binding:"omitempty,url,max=500"`
}

// OfferResponse represents a supplier offer in API responses
type OfferResponse struct {
	ID            uuid.UUID       `json:"id"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	RawMaterialID uuid.UUID       `json:"raw_material_id"`
	PackageSize   decimal.Decimal `json:"package_size"`
	PackageUnit   string          `json:"package_unit"`
	SKU           string          `json:"sku"`
	Link          string          `json:"link"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// ToOfferResponse converts an offer aggregate to its response
func ToOfferResponse(o *supplier.Offer) *OfferResponse {
	return &OfferResponse{
		ID:            o.ID,
		SupplierID:    o.SupplierID,
		RawMaterialID: o.RawMaterialID,
		PackageSize:   o.PackageSize,
		PackageUnit:   o.PackageUnit,
		SKU:           o.SKU,
		Link:          o.Link,
		IsActive:      o.IsActive,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Version:       o.GetVersion(),
	}
}

// AddOfferPriceRequest represents a request to add an offer price row
type AddOfferPriceRequest struct {
	PricePerPackage decimal.Decimal `json:"price_per_package" binding:"required"`
	Currency        string          `json:"currency" binding:"required,len=3"`
	ValidFrom       string          `json:"valid_from" binding:"required"`
	ValidTo         *string         `json:"valid_to"`
}

// OfferPriceResponse represents an offer price row in API responses
type OfferPriceResponse struct {
	ID              uuid.UUID       `json:"id"`
	OfferID         uuid.UUID       `json:"offer_id"`
	PricePerPackage decimal.Decimal `json:"price_per_package"`
	Currency        string          `json:"currency"`
	ValidFrom       string          `json:"valid_from"`
	ValidTo         *string         `json:"valid_to"`
}

// ToOfferPriceResponse converts an offer price row to its response
func ToOfferPriceResponse(p *supplier.OfferPrice) *OfferPriceResponse {
	resp := &OfferPriceResponse{
		ID:              p.ID,
		OfferID:         p.OfferID,
		PricePerPackage: p.PricePerPackage,
		Currency:        p.Currency,
		ValidFrom:       p.ValidFrom.Format(dateLayout),
	}
	if p.ValidTo != nil {
		to := p.ValidTo.Format(dateLayout)
		resp.ValidTo = &to
	}
	return resp
}

// SetDefaultOfferRequest represents a request to set a raw material's default offer
type SetDefaultOfferRequest struct {
	OfferID uuid.UUID `json:"offer_id" binding:"required"`
}

// DefaultOfferResponse represents a default offer mapping in API responses
type DefaultOfferResponse struct {
	RawMaterialID uuid.UUID `json:"raw_material_id"`
	OfferID       uuid.UUID `json:"offer_id"`
}
