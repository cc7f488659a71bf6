package service

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

// CreateCommentInput must carry exactly one of StoreReviewID and ProductReviewID.
type CreateCommentInput struct {
	UserID          uint   `json:"usuarioId"`
	StoreReviewID   *uint  `json:"avaliacaoId"`
	ProductReviewID *uint  `json:"avaliacaoProdutoId"`
	Content         string `json:"conteudo" binding:"required,max=2000"`
}

type UpdateCommentInput struct {
	Content *string `json:"conteudo" binding:"omitempty,min=1,max=2000"`
}

type CommentService interface {
	Create(authorID uint, input CreateCommentInput) (*model.ReviewComment, error)
	List(filter repository.CommentFilter) ([]model.ReviewComment, error)
	Get(id uint) (*model.ReviewComment, error)
	Update(id uint, input UpdateCommentInput) (*model.ReviewComment, error)
	Delete(id uint) (*model.ReviewComment, error)
}

type commentService struct {
	commentRepo       repository.CommentRepository
	storeReviewRepo   repository.StoreReviewRepository
	productReviewRepo repository.ProductReviewRepository
	userRepo          repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	storeReviewRepo repository.StoreReviewRepository,
	productReviewRepo repository.ProductReviewRepository,
	userRepo repository.UserRepository,
) CommentService {
	return &commentService{
		commentRepo:       commentRepo,
		storeReviewRepo:   storeReviewRepo,
		productReviewRepo: productReviewRepo,
		userRepo:          userRepo,
	}
}

func (s *commentService) Create(authorID uint, input CreateCommentInput) (*model.ReviewComment, error) {
	storeTarget := input.StoreReviewID != nil && *input.StoreReviewID != 0
	productTarget := input.ProductReviewID != nil && *input.ProductReviewID != 0
	if storeTarget == productTarget {
		return nil, ErrCommentTarget
	}

	userID, err := resolveAuthor(s.userRepo, authorID, input.UserID)
	if err != nil {
		return nil, err
	}

	comment := &model.ReviewComment{
		UserID:  userID,
		Content: input.Content,
	}
	if storeTarget {
		if err := requireReference(s.storeReviewRepo.Exists, "store review", *input.StoreReviewID); err != nil {
			return nil, err
		}
		comment.StoreReviewID = input.StoreReviewID
	} else {
		if err := requireReference(s.productReviewRepo.Exists, "product review", *input.ProductReviewID); err != nil {
			return nil, err
		}
		comment.ProductReviewID = input.ProductReviewID
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	logger.Info("Review comment created", map[string]interface{}{
		"comment_id": comment.ID,
		"user_id":    comment.UserID,
	})
	return s.Get(comment.ID)
}

func (s *commentService) List(filter repository.CommentFilter) ([]model.ReviewComment, error) {
	return s.commentRepo.FindAll(filter)
}

func (s *commentService) Get(id uint) (*model.ReviewComment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrCommentNotFound)
	}
	return comment, nil
}

func (s *commentService) Update(id uint, input UpdateCommentInput) (*model.ReviewComment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrCommentNotFound)
	}

	if input.Content != nil {
		comment.Content = *input.Content
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(id uint) (*model.ReviewComment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrCommentNotFound)
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return nil, err
	}

	logger.Info("Review comment deleted", map[string]interface{}{
		"comment_id": id,
	})
	return comment, nil
}
