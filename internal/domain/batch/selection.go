package batch

import (
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierSelection overrides the default offer for one raw material within
// one batch. At most one row exists per (batch, raw material); upserts
// overwrite, deletes remove. Selections never touch recipes or default
// offers.
type SupplierSelection struct {
	shared.BaseEntity
	BatchID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_batch_raw_material"`
	RawMaterialID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_batch_raw_material"`
	OfferID       uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (SupplierSelection) TableName() string {
	return "batch_supplier_selections"
}

// NewSupplierSelection creates a new supplier selection override
func NewSupplierSelection(batchID, rawMaterialID, offerID uuid.UUID) (*SupplierSelection, error) {
	if batchID == uuid.Nil || rawMaterialID == uuid.Nil || offerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Batch, raw material and offer IDs are required")
	}
	return &SupplierSelection{
		BaseEntity:    shared.NewBaseEntity(),
		BatchID:       batchID,
		RawMaterialID: rawMaterialID,
		OfferID:       offerID,
	}, nil
}
