package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cosmo/backend/internal/domain/material"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRawMaterialRepository implements RawMaterialRepository using GORM
type GormRawMaterialRepository struct {
	db *gorm.DB
}

// NewGormRawMaterialRepository creates a new GormRawMaterialRepository
func NewGormRawMaterialRepository(db *gorm.DB) *GormRawMaterialRepository {
	return &GormRawMaterialRepository{db: db}
}

// FindByID finds a raw material by its ID
func (r *GormRawMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*material.RawMaterial, error) {
	var m material.RawMaterial
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByIDs finds multiple raw materials by their IDs
func (r *GormRawMaterialRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]material.RawMaterial, error) {
	if len(ids) == 0 {
		return []material.RawMaterial{}, nil
	}
	var materials []material.RawMaterial
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// FindAll finds all raw materials matching the filter
func (r *GormRawMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]material.RawMaterial, error) {
	var materials []material.RawMaterial
	query := r.applyFilter(r.db.WithContext(ctx).Model(&material.RawMaterial{}), filter)
	query = applyPagination(query, filter, map[string]bool{"name": true, "created_at": true}, "name ASC")

	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// Save creates or updates a raw material
func (r *GormRawMaterialRepository) Save(ctx context.Context, m *material.RawMaterial) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Count counts raw materials matching the filter
func (r *GormRawMaterialRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&material.RawMaterial{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRawMaterialRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "unit":
			query = query.Where("unit = ?", value)
		}
	}
	return query
}

// GormManualPriceRepository implements ManualPriceRepository using GORM
type GormManualPriceRepository struct {
	db *gorm.DB
}

// NewGormManualPriceRepository creates a new GormManualPriceRepository
func NewGormManualPriceRepository(db *gorm.DB) *GormManualPriceRepository {
	return &GormManualPriceRepository{db: db}
}

// FindByRawMaterial returns the full manual price history, newest valid-from first
func (r *GormManualPriceRepository) FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]material.ManualPrice, error) {
	var prices []material.ManualPrice
	if err := r.db.WithContext(ctx).
		Where("raw_material_id = ?", rawMaterialID).
		Order("valid_from DESC").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// FindAsOf returns the manual price row valid on the given date.
// The row with the latest valid-from wins when several qualify.
func (r *GormManualPriceRepository) FindAsOf(ctx context.Context, rawMaterialID uuid.UUID, date time.Time) (*material.ManualPrice, error) {
	var price material.ManualPrice
	err := r.db.WithContext(ctx).
		Where("raw_material_id = ? AND valid_from <= ? AND (valid_to IS NULL OR valid_to >= ?)",
			rawMaterialID, date, date).
		Order("valid_from DESC").
		First(&price).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &price, nil
}

// Save creates or updates a manual price row
func (r *GormManualPriceRepository) Save(ctx context.Context, p *material.ManualPrice) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Ensure interfaces are implemented
var _ material.RawMaterialRepository = (*GormRawMaterialRepository)(nil)
var _ material.ManualPriceRepository = (*GormManualPriceRepository)(nil)
