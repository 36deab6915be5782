package persistence

import (
	"context"
	"errors"

	"github.com/cosmo/backend/internal/domain/recipe"
	"github.com/cosmo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecipeRepository implements recipe.Repository using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// FindByID finds a recipe by its ID, items included
func (r *GormRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_items.position ASC")
		}).
		First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindByIDs finds multiple recipes by their IDs, items included
func (r *GormRecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]recipe.Recipe, error) {
	if len(ids) == 0 {
		return []recipe.Recipe{}, nil
	}
	var recipes []recipe.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_items.position ASC")
		}).
		Where("id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindAll finds all recipes matching the filter
func (r *GormRecipeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	query := r.applyFilter(r.db.WithContext(ctx).Model(&recipe.Recipe{}), filter)
	query = applyPagination(query, filter, map[string]bool{"name": true, "created_at": true}, "name ASC")

	if err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_items.position ASC")
		}).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Save creates or updates a recipe together with its items.
// Item lines are replaced wholesale so removed lines do not linger.
func (r *GormRecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&recipe.RecipeItem{}).Error; err != nil {
			return err
		}
		if err := tx.Omit("Items").Save(rec).Error; err != nil {
			return err
		}
		if len(rec.Items) == 0 {
			return nil
		}
		return tx.Create(&rec.Items).Error
	})
}

// Count counts recipes matching the filter
func (r *GormRecipeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&recipe.Recipe{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRecipeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}

var _ recipe.Repository = (*GormRecipeRepository)(nil)
