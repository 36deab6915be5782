package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/cosmo/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*supplier.Supplier, error) {
	var s supplier.Supplier
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll finds all suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]supplier.Supplier, error) {
	var suppliers []supplier.Supplier
	query := r.applyFilter(r.db.WithContext(ctx).Model(&supplier.Supplier{}), filter)
	query = applyPagination(query, filter, map[string]bool{"name": true, "created_at": true}, "name ASC")

	if err := query.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Count counts suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&supplier.Supplier{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormSupplierRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR contact_email LIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}
	return query
}

// GormOfferRepository implements OfferRepository using GORM
type GormOfferRepository struct {
	db *gorm.DB
}

// NewGormOfferRepository creates a new GormOfferRepository
func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// FindByID finds an offer by its ID
func (r *GormOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*supplier.Offer, error) {
	var o supplier.Offer
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByRawMaterial returns all offers for a raw material
func (r *GormOfferRepository) FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]supplier.Offer, error) {
	var offers []supplier.Offer
	if err := r.db.WithContext(ctx).
		Where("raw_material_id = ?", rawMaterialID).
		Order("created_at ASC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// FindActiveByRawMaterial returns active offers of active suppliers for a raw material
func (r *GormOfferRepository) FindActiveByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) ([]supplier.Offer, error) {
	var offers []supplier.Offer
	if err := r.db.WithContext(ctx).
		Joins("JOIN suppliers ON suppliers.id = supplier_offers.supplier_id").
		Where("supplier_offers.raw_material_id = ? AND supplier_offers.is_active = ? AND suppliers.is_active = ?",
			rawMaterialID, true, true).
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// FindBySupplier returns all offers of a supplier
func (r *GormOfferRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]supplier.Offer, error) {
	var offers []supplier.Offer
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at ASC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Save creates or updates an offer
func (r *GormOfferRepository) Save(ctx context.Context, o *supplier.Offer) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// GormOfferPriceRepository implements OfferPriceRepository using GORM
type GormOfferPriceRepository struct {
	db *gorm.DB
}

// NewGormOfferPriceRepository creates a new GormOfferPriceRepository
func NewGormOfferPriceRepository(db *gorm.DB) *GormOfferPriceRepository {
	return &GormOfferPriceRepository{db: db}
}

// FindByOffer returns the full price history of an offer, newest valid-from first
func (r *GormOfferPriceRepository) FindByOffer(ctx context.Context, offerID uuid.UUID) ([]supplier.OfferPrice, error) {
	var prices []supplier.OfferPrice
	if err := r.db.WithContext(ctx).
		Where("offer_id = ?", offerID).
		Order("valid_from DESC").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// FindAsOf returns the price row valid on the given date.
// The row with the latest valid-from wins when several qualify.
func (r *GormOfferPriceRepository) FindAsOf(ctx context.Context, offerID uuid.UUID, date time.Time) (*supplier.OfferPrice, error) {
	var price supplier.OfferPrice
	err := r.db.WithContext(ctx).
		Where("offer_id = ? AND valid_from <= ? AND (valid_to IS NULL OR valid_to >= ?)",
			offerID, date, date).
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

// Save creates or updates an offer price row
func (r *GormOfferPriceRepository) Save(ctx context.Context, p *supplier.OfferPrice) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// GormDefaultOfferRepository implements DefaultOfferRepository using GORM
type GormDefaultOfferRepository struct {
	db *gorm.DB
}

// NewGormDefaultOfferRepository creates a new GormDefaultOfferRepository
func NewGormDefaultOfferRepository(db *gorm.DB) *GormDefaultOfferRepository {
	return &GormDefaultOfferRepository{db: db}
}

// FindByRawMaterial returns the default offer mapping of a raw material
func (r *GormDefaultOfferRepository) FindByRawMaterial(ctx context.Context, rawMaterialID uuid.UUID) (*supplier.DefaultOffer, error) {
	var d supplier.DefaultOffer
	if err := r.db.WithContext(ctx).First(&d, "raw_material_id = ?", rawMaterialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Set assigns the default offer for a raw material, replacing any existing mapping
func (r *GormDefaultOfferRepository) Set(ctx context.Context, rawMaterialID, offerID uuid.UUID) error {
	d, err := supplier.NewDefaultOffer(rawMaterialID, offerID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "raw_material_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"offer_id", "updated_at"}),
		}).
		Create(d).Error
}

// Clear removes the default offer mapping of a raw material.
// Clearing an absent mapping is not an error.
func (r *GormDefaultOfferRepository) Clear(ctx context.Context, rawMaterialID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&supplier.DefaultOffer{}, "raw_material_id = ?", rawMaterialID).Error
}

// Ensure interfaces are implemented
var _ supplier.SupplierRepository = (*GormSupplierRepository)(nil)
var _ supplier.OfferRepository = (*GormOfferRepository)(nil)
var _ supplier.OfferPriceRepository = (*GormOfferPriceRepository)(nil)
var _ supplier.DefaultOfferRepository = (*GormDefaultOfferRepository)(nil)
