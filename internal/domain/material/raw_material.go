package material

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
)

// RawMaterial represents a raw material used in cosmetic recipes.
// It is the aggregate root for raw-material-related operations.
type RawMaterial struct {
	shared.BaseAggregateRoot
	Name     string `gorm:"type:varchar(200);not null"`
	Unit     string `gorm:"type:varchar(20);not null"` // Base unit (e.g., "g", "ml")
	Notes    string `gorm:"type:text"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (RawMaterial) TableName() string {
	return "raw_materials"
}

// NewRawMaterial creates a new raw material
func NewRawMaterial(name, unit, notes string) (*RawMaterial, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}

	return &RawMaterial{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Unit:              unit,
		Notes:             notes,
		IsActive:          true,
	}, nil
}

// Update updates the raw material's basic information
func (m *RawMaterial) Update(name, unit, notes string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateUnit(unit); err != nil {
		return err
	}

	m.Name = name
	m.Unit = unit
	m.Notes = notes
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// Activate marks the raw material as active
func (m *RawMaterial) Activate() {
	m.IsActive = true
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

// Deactivate marks the raw material as inactive
func (m *RawMaterial) Deactivate() {
	m.IsActive = false
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Raw material name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Raw material name cannot exceed 200 characters")
	}
	return nil
}

func validateUnit(unit string) error {
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	return nil
}
