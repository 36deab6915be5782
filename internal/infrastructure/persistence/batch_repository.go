package persistence

import (
	"context"
	"errors"

	"github.com/cosmo/backend/internal/domain/batch"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBatchTemplateRepository implements batch.TemplateRepository using GORM
type GormBatchTemplateRepository struct {
	db *gorm.DB
}

// NewGormBatchTemplateRepository creates a new GormBatchTemplateRepository
func NewGormBatchTemplateRepository(db *gorm.DB) *GormBatchTemplateRepository {
	return &GormBatchTemplateRepository{db: db}
}

// FindByID finds a template by its ID, items included
func (r *GormBatchTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*batch.BatchTemplate, error) {
	var t batch.BatchTemplate
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("batch_template_items.position ASC")
		}).
		First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindAll finds all templates matching the filter
func (r *GormBatchTemplateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]batch.BatchTemplate, error) {
	var templates []batch.BatchTemplate
	query := r.db.WithContext(ctx).Model(&batch.BatchTemplate{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	query = applyPagination(query, filter, map[string]bool{"name": true, "created_at": true}, "name ASC")

	if err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("batch_template_items.position ASC")
		}).
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Save creates or updates a template together with its items.
// Product lines are replaced wholesale.
func (r *GormBatchTemplateRepository) Save(ctx context.Context, t *batch.BatchTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", t.ID).Delete(&batch.TemplateItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items").Save(t).Error; err != nil {
			return err
		}
		if len(t.Items) == 0 {
			return nil
		}
		return tx.Create(&t.Items).Error
	})
}

// Count counts templates matching the filter
func (r *GormBatchTemplateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&batch.BatchTemplate{})
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormBatchRepository implements batch.Repository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByID finds a batch by its ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*batch.Batch, error) {
	var b batch.Batch
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindAll finds all batches matching the filter
func (r *GormBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]batch.Batch, error) {
	var batches []batch.Batch
	query := r.applyFilter(r.db.WithContext(ctx).Model(&batch.Batch{}), filter)
	query = applyPagination(query, filter, map[string]bool{"created_at": true, "pricing_date": true}, "created_at DESC")

	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// Save creates or updates a batch
func (r *GormBatchRepository) Save(ctx context.Context, b *batch.Batch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Count counts batches matching the filter
func (r *GormBatchRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&batch.Batch{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormBatchRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "template_id":
			query = query.Where("template_id = ?", value)
		}
	}
	return query
}

// GormSelectionRepository implements batch.SelectionRepository using GORM
type GormSelectionRepository struct {
	db *gorm.DB
}

// NewGormSelectionRepository creates a new GormSelectionRepository
func NewGormSelectionRepository(db *gorm.DB) *GormSelectionRepository {
	return &GormSelectionRepository{db: db}
}

// FindByBatch returns all selection overrides of a batch
func (r *GormSelectionRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) ([]batch.SupplierSelection, error) {
	var selections []batch.SupplierSelection
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

// Upsert writes a selection override, replacing any existing row for the
// same (batch, raw material) pair
func (r *GormSelectionRepository) Upsert(ctx context.Context, s *batch.SupplierSelection) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "batch_id"}, {Name: "raw_material_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"offer_id", "updated_at"}),
		}).
		Create(s).Error
}

// Delete removes the override for a (batch, raw material) pair.
// Deleting an absent row is not an error.
func (r *GormSelectionRepository) Delete(ctx context.Context, batchID, rawMaterialID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&batch.SupplierSelection{}, "batch_id = ? AND raw_material_id = ?", batchID, rawMaterialID).Error
}

// Ensure interfaces are implemented
var _ batch.TemplateRepository = (*GormBatchTemplateRepository)(nil)
var _ batch.Repository = (*GormBatchRepository)(nil)
var _ batch.SelectionRepository = (*GormSelectionRepository)(nil)
