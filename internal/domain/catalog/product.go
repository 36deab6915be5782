package catalog

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Product represents a sellable product tied to the recipe that produces it.
// It is the aggregate root for catalog operations.
type Product struct {
	shared.BaseAggregateRoot
	Name     string     `gorm:"type:varchar(200);not null"`
	SKU      string     `gorm:"type:varchar(100);uniqueIndex"`
	RecipeID *uuid.UUID `gorm:"type:uuid;index"` // nil until a recipe is assigned
	Notes    string     `gorm:"type:text"`
	IsActive bool       `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, sku, notes string, recipeID *uuid.UUID) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SKU:               sku,
		RecipeID:          recipeID,
		Notes:             notes,
		IsActive:          true,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, sku, notes string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.SKU = sku
	p.Notes = notes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// AssignRecipe links the product to the recipe that produces it
func (p *Product) AssignRecipe(recipeID uuid.UUID) error {
	if recipeID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Recipe ID is required")
	}
	p.RecipeID = &recipeID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// ClearRecipe detaches the product from its recipe
func (p *Product) ClearRecipe() {
	p.RecipeID = nil
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate marks the product as active
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Deactivate marks the product as inactive
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
