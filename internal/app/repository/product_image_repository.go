package repository

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductImageRepository interface {
	Create(image *model.ProductImage) error
	FindAll(productID *uint) ([]model.ProductImage, error)
	FindByID(id uint) (*model.ProductImage, error)
	NextPosition(productID uint) (int, error)
	Update(image *model.ProductImage) error
	Delete(id uint) error
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepository {
	return &productImageRepository{db: db}
}

func (r *productImageRepository) Create(image *model.ProductImage) error {
	logger.Debug("Creating product image in database", map[string]interface{}{
		"product_id": image.ProductID,
		"position":   image.Position,
	})

	if err := r.db.Create(image).Error; err != nil {
		logger.Error("Failed to create product image in database", err, map[string]interface{}{
			"product_id": image.ProductID,
		})
		return err
	}
	return nil
}

func (r *productImageRepository) FindAll(productID *uint) ([]model.ProductImage, error) {
	query := r.db.Model(&model.ProductImage{})
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	var images []model.ProductImage
	if err := orderImages(query.Order("product_id ASC")).Find(&images).Error; err != nil {
		logger.Error("Failed to list product images in database", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return images, nil
}

func (r *productImageRepository) FindByID(id uint) (*model.ProductImage, error) {
	var image model.ProductImage
	if err := r.db.First(&image, id).Error; err != nil {
		logLookupError("Failed to find product image by ID in database", err, map[string]interface{}{
			"image_id": id,
		})
		return nil, err
	}
	return &image, nil
}

// NextPosition returns one past the highest position used by the product's images.
func (r *productImageRepository) NextPosition(productID uint) (int, error) {
	var maxPosition int
	err := r.db.Model(&model.ProductImage{}).
		Where("product_id = ?", productID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPosition).Error
	if err != nil {
		logger.Error("Failed to compute next image position", err, map[string]interface{}{
			"product_id": productID,
		})
		return 0, err
	}
	return maxPosition + 1, nil
}

func (r *productImageRepository) Update(image *model.ProductImage) error {
	if err := r.db.Save(image).Error; err != nil {
		logger.Error("Failed to update product image in database", err, map[string]interface{}{
			"image_id": image.ID,
		})
		return err
	}
	return nil
}

func (r *productImageRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.ProductImage{}, id).Error; err != nil {
		logger.Error("Failed to delete product image from database", err, map[string]interface{}{
			"image_id": id,
		})
		return err
	}

	logger.Debug("Product image deleted from database", map[string]interface{}{
		"image_id": id,
	})
	return nil
}
