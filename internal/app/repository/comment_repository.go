package repository

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentFilter struct {
	StoreReviewID   *uint
	ProductReviewID *uint
}

type CommentRepository interface {
	Create(comment *model.ReviewComment) error
	FindAll(filter CommentFilter) ([]model.ReviewComment, error)
	FindByID(id uint) (*model.ReviewComment, error)
	Update(comment *model.ReviewComment) error
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.ReviewComment) error {
	logger.Debug("Creating comment in database", map[string]interface{}{
		"user_id":           comment.UserID,
		"store_review_id":   comment.StoreReviewID,
		"product_review_id": comment.ProductReviewID,
	})

	if err := r.db.Omit(clause.Associations).Create(comment).Error; err != nil {
		logger.Error("Failed to create comment in database", err, map[string]interface{}{
			"user_id": comment.UserID,
		})
		return err
	}
	return nil
}

// FindAll lists comments newest first with their author.
func (r *commentRepository) FindAll(filter CommentFilter) ([]model.ReviewComment, error) {
	query := r.db.Model(&model.ReviewComment{})
	if filter.StoreReviewID != nil {
		query = query.Where("store_review_id = ?", *filter.StoreReviewID)
	}
	if filter.ProductReviewID != nil {
		query = query.Where("product_review_id = ?", *filter.ProductReviewID)
	}

	var comments []model.ReviewComment
	if err := newestFirst(query).Preload("User").Find(&comments).Error; err != nil {
		logger.Error("Failed to list comments in database", err)
		return nil, err
	}

	logger.Debug("Comments listed from database", map[string]interface{}{
		"count": len(comments),
	})
	return comments, nil
}

func (r *commentRepository) FindByID(id uint) (*model.ReviewComment, error) {
	var comment model.ReviewComment
	if err := r.db.Preload("User").First(&comment, id).Error; err != nil {
		logLookupError("Failed to find comment by ID in database", err, map[string]interface{}{
			"comment_id": id,
		})
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *model.ReviewComment) error {
	if err := r.db.Omit(clause.Associations).Save(comment).Error; err != nil {
		logger.Error("Failed to update comment in database", err, map[string]interface{}{
			"comment_id": comment.ID,
		})
		return err
	}
	return nil
}

func (r *commentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.ReviewComment{}, id).Error; err != nil {
		logger.Error("Failed to delete comment from database", err, map[string]interface{}{
			"comment_id": id,
		})
		return err
	}
	return nil
}
