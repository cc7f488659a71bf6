package repository

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryFilter struct {
	ParentID *uint
	RootOnly bool
}

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll(filter CategoryFilter) ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	FindBySlug(slug string) (*model.Category, error)
	Exists(id uint) (bool, error)
	ParentID(id uint) (*uint, error)
	Update(category *model.Category) error
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"name": category.Name,
		"slug": category.Slug,
	})

	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"slug": category.Slug,
		})
		return err
	}

	logger.Debug("Category created in database", map[string]interface{}{
		"category_id": category.ID,
	})
	return nil
}

// FindAll lists categories with their products.
func (r *categoryRepository) FindAll(filter CategoryFilter) ([]model.Category, error) {
	query := r.db.Model(&model.Category{})
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	} else if filter.RootOnly {
		query = query.Where("parent_id IS NULL")
	}

	var categories []model.Category
	if err := query.Preload("Products", orderByID).Order("name ASC, id ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to list categories in database", err)
		return nil, err
	}

	logger.Debug("Categories listed from database", map[string]interface{}{
		"count": len(categories),
	})
	return categories, nil
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.
		Preload("Products", orderByID).
		Preload("Children", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC, id ASC") }).
		First(&category, id).Error
	if err != nil {
		logLookupError("Failed to find category by ID in database", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		logLookupError("Failed to find category by slug in database", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &model.Category{}, id)
}

// ParentID returns the parent of the category, nil for roots.
func (r *categoryRepository) ParentID(id uint) (*uint, error) {
	var category model.Category
	if err := r.db.Select("id", "parent_id").First(&category, id).Error; err != nil {
		logLookupError("Failed to load category parent from database", err, map[string]interface{}{
			"category_id": id,
		})
		return nil, err
	}
	return category.ParentID, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	logger.Debug("Updating category in database", map[string]interface{}{
		"category_id": category.ID,
	})

	if err := r.db.Omit(clause.Associations).Save(category).Error; err != nil {
		logger.Error("Failed to update category in database", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return err
	}
	return nil
}

// Delete removes the category. Sub-categories become roots; referencing products block the delete.
func (r *categoryRepository) Delete(id uint) error {
	logger.Debug("Deleting category from database", map[string]interface{}{
		"category_id": id,
	})

	if err := r.db.Delete(&model.Category{}, id).Error; err != nil {
		logger.Error("Failed to delete category from database", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}
	return nil
}
