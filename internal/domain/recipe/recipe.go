package recipe

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a recipe
type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusActive Status = "ACTIVE"
)

// Recipe describes how one yield unit of a product is mixed: a list of raw
// materials with the grams each contributes. It is the aggregate root;
// items are owned rows replaced wholesale on update.
type Recipe struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Status      Status          `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	YieldAmount decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	YieldUnit   string          `gorm:"type:varchar(20);not null"`
	Items       []RecipeItem    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeItem is one raw material line of a recipe. The same raw material may
// appear on multiple lines; amounts accumulate during costing.
type RecipeItem struct {
	shared.BaseEntity
	RecipeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RawMaterialID uuid.UUID       `gorm:"type:uuid;not null"`
	AmountGram    decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	Position      int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (RecipeItem) TableName() string {
	return "recipe_items"
}

// ItemInput carries one recipe line for creation or replacement
type ItemInput struct {
	RawMaterialID uuid.UUID
	AmountGram    decimal.Decimal
}

// NewRecipe creates a new recipe in DRAFT status with the given item lines
func NewRecipe(name string, yieldAmount decimal.Decimal, yieldUnit string, items []ItemInput) (*Recipe, error) {
	if err := validateRecipeName(name); err != nil {
		return nil, err
	}
	if !yieldAmount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_YIELD", "Yield amount must be positive")
	}
	if yieldUnit == "" {
		return nil, shared.NewDomainError("INVALID_YIELD", "Yield unit cannot be empty")
	}

	r := &Recipe{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Status:            StatusDraft,
		YieldAmount:       yieldAmount,
		YieldUnit:         yieldUnit,
	}
	if err := r.setItems(items); err != nil {
		return nil, err
	}
	return r, nil
}

// Update replaces the recipe's name, yield and item lines
func (r *Recipe) Update(name string, yieldAmount decimal.Decimal, yieldUnit string, items []ItemInput) error {
	if err := validateRecipeName(name); err != nil {
		return err
	}
	if !yieldAmount.IsPositive() {
		return shared.NewDomainError("INVALID_YIELD", "Yield amount must be positive")
	}
	if yieldUnit == "" {
		return shared.NewDomainError("INVALID_YIELD", "Yield unit cannot be empty")
	}
	if err := r.setItems(items); err != nil {
		return err
	}

	r.Name = name
	r.YieldAmount = yieldAmount
	r.YieldUnit = yieldUnit
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Activate moves the recipe from DRAFT to ACTIVE
func (r *Recipe) Activate() {
	r.Status = StatusActive
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

func (r *Recipe) setItems(items []ItemInput) error {
	rows := make([]RecipeItem, 0, len(items))
	for i, in := range items {
		if in.RawMaterialID == uuid.Nil {
			return shared.NewDomainError("INVALID_ITEM", "Recipe item requires a raw material")
		}
		if !in.AmountGram.IsPositive() {
			return shared.NewDomainError("INVALID_ITEM", "Recipe item amount must be positive")
		}
		rows = append(rows, RecipeItem{
			BaseEntity:    shared.NewBaseEntity(),
			RecipeID:      r.ID,
			RawMaterialID: in.RawMaterialID,
			AmountGram:    in.AmountGram,
			Position:      i,
		})
	}
	r.Items = rows
	return nil
}

// TotalGram returns the summed gram amount of all item lines
func (r *Recipe) TotalGram() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.AmountGram)
	}
	return total
}

func validateRecipeName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Recipe name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Recipe name cannot exceed 200 characters")
	}
	return nil
}
