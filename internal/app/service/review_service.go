package service

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

type CreateStoreReviewInput struct {
	// UserID defaults to the authenticated user when omitted.
	UserID  uint   `json:"usuarioId"`
	StoreID uint   `json:"lojaId" binding:"required"`
	Rating  int    `json:"nota" binding:"required,min=1,max=5"`
	Comment string `json:"comentario" binding:"max=2000"`
}

type CreateProductReviewInput struct {
	UserID    uint   `json:"usuarioId"`
	ProductID uint   `json:"produtoId" binding:"required"`
	Rating    int    `json:"nota" binding:"required,min=1,max=5"`
	Comment   string `json:"comentario" binding:"max=2000"`
}

// UpdateReviewInput patches either kind of review.
type UpdateReviewInput struct {
	Rating  *int    `json:"nota" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comentario" binding:"omitempty,max=2000"`
}

type StoreReviewService interface {
	Create(authorID uint, input CreateStoreReviewInput) (*model.StoreReview, error)
	List(storeID *uint) ([]model.StoreReview, error)
	Get(id uint) (*model.StoreReview, error)
	Update(id uint, input UpdateReviewInput) (*model.StoreReview, error)
	Delete(id uint) (*model.StoreReview, error)
}

type ProductReviewService interface {
	Create(authorID uint, input CreateProductReviewInput) (*model.ProductReview, error)
	List(productID *uint) ([]model.ProductReview, error)
	Get(id uint) (*model.ProductReview, error)
	Update(id uint, input UpdateReviewInput) (*model.ProductReview, error)
	Delete(id uint) (*model.ProductReview, error)
}

type storeReviewService struct {
	reviewRepo repository.StoreReviewRepository
	storeRepo  repository.StoreRepository
	userRepo   repository.UserRepository
}

func NewStoreReviewService(
	reviewRepo repository.StoreReviewRepository,
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
) StoreReviewService {
	return &storeReviewService{
		reviewRepo: reviewRepo,
		storeRepo:  storeRepo,
		userRepo:   userRepo,
	}
}

func (s *storeReviewService) Create(authorID uint, input CreateStoreReviewInput) (*model.StoreReview, error) {
	userID, err := resolveAuthor(s.userRepo, authorID, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireReference(s.storeRepo.Exists, "store", input.StoreID); err != nil {
		return nil, err
	}

	review := &model.StoreReview{
		UserID:  userID,
		StoreID: input.StoreID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	logger.Info("Store review created", map[string]interface{}{
		"review_id": review.ID,
		"store_id":  review.StoreID,
		"user_id":   review.UserID,
	})
	return s.Get(review.ID)
}

// List returns reviews newest first, restricted to one store when storeID is set.
func (s *storeReviewService) List(storeID *uint) ([]model.StoreReview, error) {
	return s.reviewRepo.FindAll(storeID)
}

func (s *storeReviewService) Get(id uint) (*model.StoreReview, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}
	return review, nil
}

func (s *storeReviewService) Update(id uint, input UpdateReviewInput) (*model.StoreReview, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	logger.Info("Store review updated", map[string]interface{}{
		"review_id": id,
	})
	return review, nil
}

// Delete removes the review and its comments.
func (s *storeReviewService) Delete(id uint) (*model.StoreReview, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		return nil, err
	}

	logger.Info("Store review deleted", map[string]interface{}{
		"review_id": id,
	})
	return review, nil
}

type productReviewService struct {
	reviewRepo  repository.ProductReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewProductReviewService(
	reviewRepo repository.ProductReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) ProductReviewService {
	return &productReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (s *productReviewService) Create(authorID uint, input CreateProductReviewInput) (*model.ProductReview, error) {
	userID, err := resolveAuthor(s.userRepo, authorID, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireReference(s.productRepo.Exists, "product", input.ProductID); err != nil {
		return nil, err
	}

	review := &model.ProductReview{
		UserID:    userID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	logger.Info("Product review created", map[string]interface{}{
		"review_id":  review.ID,
		"product_id": review.ProductID,
		"user_id":    review.UserID,
	})
	return s.Get(review.ID)
}

func (s *productReviewService) List(productID *uint) ([]model.ProductReview, error) {
	return s.reviewRepo.FindAll(productID)
}

func (s *productReviewService) Get(id uint) (*model.ProductReview, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}
	return review, nil
}

func (s *productReviewService) Update(id uint, input UpdateReviewInput) (*model.ProductReview, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}

	logger.Info("Product review updated", map[string]interface{}{
		"review_id": id,
	})
	return review, nil
}

func (s *productReviewService) Delete(id uint) (*model.ProductReview, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		return nil, err
	}

	logger.Info("Product review deleted", map[string]interface{}{
		"review_id": id,
	})
	return review, nil
}

// resolveAuthor picks the explicit author, falling back to the authenticated user.
func resolveAuthor(users repository.UserRepository, authorID, requested uint) (uint, error) {
	if requested == 0 {
		requested = authorID
	}
	if err := requireReference(users.Exists, "user", requested); err != nil {
		return 0, err
	}
	return requested, nil
}
