package repository

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoreReviewRepository interface {
	Create(review *model.StoreReview) error
	FindAll(storeID *uint) ([]model.StoreReview, error)
	FindByID(id uint) (*model.StoreReview, error)
	Exists(id uint) (bool, error)
	Update(review *model.StoreReview) error
	Delete(id uint) error
}

type ProductReviewRepository interface {
	Create(review *model.ProductReview) error
	FindAll(productID *uint) ([]model.ProductReview, error)
	FindByID(id uint) (*model.ProductReview, error)
	Exists(id uint) (bool, error)
	Update(review *model.ProductReview) error
	Delete(id uint) error
}

type storeReviewRepository struct {
	db *gorm.DB
}

func NewStoreReviewRepository(db *gorm.DB) StoreReviewRepository {
	return &storeReviewRepository{db: db}
}

func (r *storeReviewRepository) Create(review *model.StoreReview) error {
	logger.Debug("Creating store review in database", map[string]interface{}{
		"store_id": review.StoreID,
		"user_id":  review.UserID,
		"rating":   review.Rating,
	})

	if err := r.db.Omit(clause.Associations).Create(review).Error; err != nil {
		logger.Error("Failed to create store review in database", err, map[string]interface{}{
			"store_id": review.StoreID,
			"user_id":  review.UserID,
		})
		return err
	}
	return nil
}

// FindAll lists reviews newest first, optionally for a single store.
func (r *storeReviewRepository) FindAll(storeID *uint) ([]model.StoreReview, error) {
	query := r.db.Model(&model.StoreReview{})
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var reviews []model.StoreReview
	err := newestFirst(query).
		Preload("User").
		Preload("Store").
		Preload("Comments", oldestFirst).
		Find(&reviews).Error
	if err != nil {
		logger.Error("Failed to list store reviews in database", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}

	logger.Debug("Store reviews listed from database", map[string]interface{}{
		"count": len(reviews),
	})
	return reviews, nil
}

// FindByID loads a review with its full comment thread and commenter identities.
func (r *storeReviewRepository) FindByID(id uint) (*model.StoreReview, error) {
	var review model.StoreReview
	err := r.db.
		Preload("User").
		Preload("Store").
		Preload("Comments", oldestFirst).
		Preload("Comments.User").
		First(&review, id).Error
	if err != nil {
		logLookupError("Failed to find store review by ID in database", err, map[string]interface{}{
			"review_id": id,
		})
		return nil, err
	}
	return &review, nil
}

func (r *storeReviewRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &model.StoreReview{}, id)
}

func (r *storeReviewRepository) Update(review *model.StoreReview) error {
	if err := r.db.Omit(clause.Associations).Save(review).Error; err != nil {
		logger.Error("Failed to update store review in database", err, map[string]interface{}{
			"review_id": review.ID,
		})
		return err
	}
	return nil
}

func (r *storeReviewRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.StoreReview{}, id).Error; err != nil {
		logger.Error("Failed to delete store review from database", err, map[string]interface{}{
			"review_id": id,
		})
		return err
	}

	logger.Debug("Store review deleted from database", map[string]interface{}{
		"review_id": id,
	})
	return nil
}

type productReviewRepository struct {
	db *gorm.DB
}

func NewProductReviewRepository(db *gorm.DB) ProductReviewRepository {
	return &productReviewRepository{db: db}
}

func (r *productReviewRepository) Create(review *model.ProductReview) error {
	logger.Debug("Creating product review in database", map[string]interface{}{
		"product_id": review.ProductID,
		"user_id":    review.UserID,
		"rating":     review.Rating,
	})

	if err := r.db.Omit(clause.Associations).Create(review).Error; err != nil {
		logger.Error("Failed to create product review in database", err, map[string]interface{}{
			"product_id": review.ProductID,
			"user_id":    review.UserID,
		})
		return err
	}
	return nil
}

// FindAll lists reviews newest first, optionally for a single product.
func (r *productReviewRepository) FindAll(productID *uint) ([]model.ProductReview, error) {
	query := r.db.Model(&model.ProductReview{})
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	var reviews []model.ProductReview
	err := newestFirst(query).
		Preload("User").
		Preload("Product").
		Preload("Product.Store").
		Preload("Comments", oldestFirst).
		Find(&reviews).Error
	if err != nil {
		logger.Error("Failed to list product reviews in database", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}

	logger.Debug("Product reviews listed from database", map[string]interface{}{
		"count": len(reviews),
	})
	return reviews, nil
}

func (r *productReviewRepository) FindByID(id uint) (*model.ProductReview, error) {
	var review model.ProductReview
	err := r.db.
		Preload("User").
		Preload("Product").
		Preload("Product.Store").
		Preload("Comments", oldestFirst).
		Preload("Comments.User").
		First(&review, id).Error
	if err != nil {
		logLookupError("Failed to find product review by ID in database", err, map[string]interface{}{
			"review_id": id,
		})
		return nil, err
	}
	return &review, nil
}

func (r *productReviewRepository) Exists(id uint) (bool, error) {
	return exists(r.db, &model.ProductReview{}, id)
}

func (r *productReviewRepository) Update(review *model.ProductReview) error {
	if err := r.db.Omit(clause.Associations).Save(review).Error; err != nil {
		logger.Error("Failed to update product review in database", err, map[string]interface{}{
			"review_id": review.ID,
		})
		return err
	}
	return nil
}

func (r *productReviewRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.ProductReview{}, id).Error; err != nil {
		logger.Error("Failed to delete product review from database", err, map[string]interface{}{
			"review_id": id,
		})
		return err
	}
	return nil
}
