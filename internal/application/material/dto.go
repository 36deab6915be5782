package material

import (
	"time"

	"github.com/cosmo/backend/internal/domain/material"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CreateRawMaterialRequest represents a request to create a raw material
type CreateRawMaterialRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Unit  string `json:"unit" binding:"required,min=1,max=20"`
	Notes string `json:"notes" binding:"max=2000"`
}

// UpdateRawMaterialRequest represents a request to update a raw material
type UpdateRawMaterialRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Unit  string `json:"unit" binding:"required,min=1,max=20"`
	Notes string `json:"notes" binding:"max=2000"`
}

// RawMaterialResponse represents a raw material in API responses
type RawMaterialResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Notes     string    `json:"notes"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ToRawMaterialResponse converts a raw material aggregate to its response
func ToRawMaterialResponse(m *material.RawMaterial) *RawMaterialResponse {
	return &RawMaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		Notes:     m.Notes,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Version:   m.GetVersion(),
	}
}

// RawMaterialListFilter represents filter options for the raw material list
type RawMaterialListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AddManualPriceRequest represents a request to add a manual price row
type AddManualPriceRequest struct {
	PricePerGram decimal.Decimal `json:"price_per_gram" binding:"required"`
	Currency     string          `json:"currency" binding:"required,len=3"`
	ValidFrom    string          `json:"valid_from" binding:"required"`
	ValidTo      *string         `json:"valid_to"`
}

// ManualPriceResponse represents a manual price row in API responses
type ManualPriceResponse struct {
	ID            uuid.UUID       `json:"id"`
	RawMaterialID uuid.UUID       `json:"raw_material_id"`
	PricePerGram  decimal.Decimal `json:"price_per_gram"`
	Currency      string          `json:"currency"`
	ValidFrom     string          `json:"valid_from"`
	ValidTo       *string         `json:"valid_to"`
}

// ToManualPriceResponse converts a manual price row to its response
func ToManualPriceResponse(p *material.ManualPrice) *ManualPriceResponse {
	resp := &ManualPriceResponse{
		ID:            p.ID,
		RawMaterialID: p.RawMaterialID,
		PricePerGram:  p.PricePerGram,
		Currency:      p.Currency,
		ValidFrom:     p.ValidFrom.Format(dateLayout),
	}
	if p.ValidTo != nil {
		to := p.ValidTo.Format(dateLayout)
		resp.ValidTo = &to
	}
	return resp
}
