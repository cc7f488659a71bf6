package service

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	apperrors "github.com/vitrine/marketplace-backend/internal/errors"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

type CreateStoreInput struct {
	Name        string `json:"nome" binding:"required,max=100"`
	Description string `json:"descricao"`
	LogoURL     string `json:"logo_url" binding:"omitempty,url"`
	BannerURL   string `json:"banner_url" binding:"omitempty,url"`
	StickerURL  string `json:"sticker_url" binding:"omitempty,url"`
}

type UpdateStoreInput struct {
	Name        *string `json:"nome" binding:"omitempty,min=1,max=100"`
	Description *string `json:"descricao"`
	LogoURL     *string `json:"logo_url" binding:"omitempty,url"`
	BannerURL   *string `json:"banner_url" binding:"omitempty,url"`
	StickerURL  *string `json:"sticker_url" binding:"omitempty,url"`
}

type StoreService interface {
	Create(ownerID uint, input CreateStoreInput) (*model.Store, error)
	List() ([]model.Store, error)
	ListByOwner(ownerID uint) ([]model.Store, error)
	Get(id uint) (*model.Store, error)
	Update(id uint, input UpdateStoreInput) (*model.Store, error)
	Delete(id uint) (*model.Store, error)
}

type storeService struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
}

func NewStoreService(storeRepo repository.StoreRepository, userRepo repository.UserRepository) StoreService {
	return &storeService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
	}
}

// Create opens a store owned by ownerID. The owner must still exist.
func (s *storeService) Create(ownerID uint, input CreateStoreInput) (*model.Store, error) {
	name, err := requiredText("nome", input.Name)
	if err != nil {
		return nil, err
	}

	ok, err := s.userRepo.Exists(ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Warn("Store owner not found", map[string]interface{}{
			"user_id": ownerID,
		})
		return nil, ErrUserNotFound
	}

	store := &model.Store{
		UserID:      ownerID,
		Name:        name,
		Description: input.Description,
		LogoURL:     input.LogoURL,
		BannerURL:   input.BannerURL,
		StickerURL:  input.StickerURL,
	}

	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}

	logger.Info("Store created", map[string]interface{}{
		"store_id": store.ID,
		"user_id":  ownerID,
	})
	return store, nil
}

func (s *storeService) List() ([]model.Store, error) {
	return s.storeRepo.FindAll()
}

// ListByOwner returns the owner's stores with their full catalog.
func (s *storeService) ListByOwner(ownerID uint) ([]model.Store, error) {
	return s.storeRepo.FindByUserID(ownerID)
}

func (s *storeService) Get(id uint) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrStoreNotFound)
	}
	return store, nil
}

func (s *storeService) Update(id uint, input UpdateStoreInput) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrStoreNotFound)
	}

	if input.Name != nil {
		if store.Name, err = requiredText("nome", *input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
	if input.LogoURL != nil {
		store.LogoURL = *input.LogoURL
	}
	if input.BannerURL != nil {
		store.BannerURL = *input.BannerURL
	}
	if input.StickerURL != nil {
		store.StickerURL = *input.StickerURL
	}

	if err := s.storeRepo.Update(store); err != nil {
		return nil, err
	}

	logger.Info("Store updated", map[string]interface{}{
		"store_id": id,
	})
	return store, nil
}

// Delete removes the store together with its products and reviews.
func (s *storeService) Delete(id uint) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrStoreNotFound)
	}

	if err := s.storeRepo.Delete(id); err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return nil, ErrStillReferenced
		}
		return nil, err
	}

	logger.Info("Store deleted", map[string]interface{}{
		"store_id": id,
	})
	return store, nil
}
