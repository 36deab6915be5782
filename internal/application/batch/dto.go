package batch

import (
	"time"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for pricing dates
const dateLayout = "2006-01-02"

// CreateBatchRequest represents a request to create a new batch
type CreateBatchRequest struct {
	TemplateID uuid.UUID `json:"template_id" binding:"required"`
}

// BatchResponse represents a batch in API responses
type BatchResponse struct {
	ID          uuid.UUID `json:"id"`
	TemplateID  uuid.UUID `json:"template_id"`
	Status      string    `json:"status"`
	PricingDate *string   `json:"pricing_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ToBatchResponse converts a batch aggregate to its response representation
func ToBatchResponse(b *batch.Batch) *BatchResponse {
	resp := &BatchResponse{
		ID:         b.ID,
		TemplateID: b.TemplateID,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
		Version:    b.GetVersion(),
	}
	if b.PricingDate != nil {
		d := b.PricingDate.Format(dateLayout)
		resp.PricingDate = &d
	}
	return resp
}

// BatchListFilter represents filter options for the batch list
type BatchListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=PLANNED OPEN"`
	Page     int    `form:"page" binding:"min=1"`
	PageSize int    `form:"page_size" binding:"min=1,max=100"`
}

// CostRowResponse is one raw material line of a batch cost breakdown
type CostRowResponse struct {
	RawMaterialID uuid.UUID       `json:"raw_material_id"`
	Grams         decimal.Decimal `json:"grams"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Cost          decimal.Decimal `json:"cost"`
}

// CostResponse is the full cost breakdown of a batch
type CostResponse struct {
	BatchID        uuid.UUID         `json:"batch_id"`
	PricingDate    string            `json:"pricing_date"`
	Materials      []CostRowResponse `json:"materials"`
	MaterialsTotal decimal.Decimal   `json:"materials_total"`
}

// CreateTemplateRequest represents a request to create a batch template
type CreateTemplateRequest struct {
	Name        string                      `json:"name" binding:"required,min=1,max=200"`
	Description string                      `json:"description" binding:"max=2000"`
	Items       []CreateTemplateItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateTemplateItemRequest is one product line of a template request
type CreateTemplateItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// TemplateItemResponse is one product line of a template response
type TemplateItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// TemplateResponse represents a batch template in API responses
type TemplateResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Items       []TemplateItemResponse `json:"items"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	Version     int                    `json:"version"`
}

// ToTemplateResponse converts a template aggregate to its response representation
func ToTemplateResponse(t *batch.BatchTemplate) *TemplateResponse {
	items := make([]TemplateItemResponse, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, TemplateItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return &TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Items:       items,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Version:     t.GetVersion(),
	}
}

// SelectionPair is one raw-material-to-offer override
type SelectionPair struct {
	RawMaterialID uuid.UUID `json:"raw_material_id" binding:"required"`
	OfferID       uuid.UUID `json:"offer_id" binding:"required"`
}

// SaveSelectionsRequest represents a request to upsert selection overrides
type SaveSelectionsRequest struct {
	Selections []SelectionPair `json:"selections" binding:"dive"`
}

// OfferOptionResponse is one selectable offer for a raw material
type OfferOptionResponse struct {
	OfferID      uuid.UUID       `json:"offer_id"`
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	PackageSize  decimal.Decimal `json:"package_size"`
	PackageUnit  string          `json:"package_unit"`
}

// IngredientConfigResponse is one raw material of a product with its
// selectable offers
type IngredientConfigResponse struct {
	RawMaterialID       uuid.UUID             `json:"raw_material_id"`
	RawMaterialName     string                `json:"raw_material_name"`
	GramsPerProductUnit decimal.Decimal       `json:"grams_per_product_unit"`
	SelectedOfferID     *uuid.UUID            `json:"selected_offer_id"`
	Offers              []OfferOptionResponse `json:"offers"`
}

// ProductConfigResponse is one product of the supplier selection view
type ProductConfigResponse struct {
	ProductID   uuid.UUID                  `json:"product_id"`
	ProductName string                     `json:"product_name"`
	Quantity    int                        `json:"quantity"`
	Ingredients []IngredientConfigResponse `json:"ingredients"`
}

// SupplierConfigResponse is the supplier selection view of a batch
type SupplierConfigResponse struct {
	BatchID     uuid.UUID               `json:"batch_id"`
	PricingDate string                  `json:"pricing_date"`
	Products    []ProductConfigResponse `json:"products"`
}
