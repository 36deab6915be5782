package batch

import (
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BatchTemplate is a reusable production plan: a named list of products with
// the quantity of each to produce. Batches are instantiated from templates.
type BatchTemplate struct {
	shared.BaseAggregateRoot
	Name        string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text"`
	Items       []TemplateItem `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (BatchTemplate) TableName() string {
	return "batch_templates"
}

// TemplateItem is one product line of a batch template
type TemplateItem struct {
	shared.BaseEntity
	TemplateID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"not null"`
	Position   int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (TemplateItem) TableName() string {
	return "batch_template_items"
}

// TemplateItemInput carries one product line for template creation or update
type TemplateItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// NewBatchTemplate creates a new batch template with the given product lines
func NewBatchTemplate(name, description string, items []TemplateItemInput) (*BatchTemplate, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot exceed 200 characters")
	}

	t := &BatchTemplate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
	}
	if err := t.setItems(items); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces the template's name, description and product lines
func (t *BatchTemplate) Update(name, description string, items []TemplateItemInput) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if err := t.setItems(items); err != nil {
		return err
	}

	t.Name = name
	t.Description = description
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

func (t *BatchTemplate) setItems(items []TemplateItemInput) error {
	rows := make([]TemplateItem, 0, len(items))
	for i, in := range items {
		if in.ProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_ITEM", "Template item requires a product")
		}
		if in.Quantity < 1 {
			return shared.NewDomainError("INVALID_ITEM", "Template item quantity must be at least 1")
		}
		rows = append(rows, TemplateItem{
			BaseEntity: shared.NewBaseEntity(),
			TemplateID: t.ID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			Position:   i,
		})
	}
	t.Items = rows
	return nil
}
