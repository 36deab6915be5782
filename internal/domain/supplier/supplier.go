package supplier

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
)

// Supplier represents a raw material supplier.
// It is the aggregate root for supplier-related operations.
type Supplier struct {
	shared.BaseAggregateRoot
	Name         string `gorm:"type:varchar(200);not null"`
	ContactEmail string `gorm:"type:varchar(200)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	Notes        string `gorm:"type:text"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, contactEmail, contactPhone, notes string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		ContactEmail:      contactEmail,
		ContactPhone:      contactPhone,
		Notes:             notes,
		IsActive:          true,
	}, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name, contactEmail, contactPhone, notes string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}

	s.Name = name
	s.ContactEmail = contactEmail
	s.ContactPhone = contactPhone
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Activate marks the supplier as active
func (s *Supplier) Activate() {
	s.IsActive = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Deactivate marks the supplier as inactive
func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

func validateSupplierName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}
