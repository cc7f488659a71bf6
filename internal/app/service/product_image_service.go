package service

import (
	"context"

	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/internal/storage"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

type CreateProductImageInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	URL       string `json:"url" binding:"required,url"`
	AltText   string `json:"alt_text" binding:"max=500"`
	Position  *int   `json:"ordem" binding:"omitempty,gte=0"`
}

type UpdateProductImageInput struct {
	URL      *string `json:"url" binding:"omitempty,url"`
	AltText  *string `json:"alt_text" binding:"omitempty,max=500"`
	Position *int    `json:"ordem" binding:"omitempty,gte=0"`
}

type UploadURLInput struct {
	ProductID   uint   `json:"productId" binding:"required"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// ImageUploadSigner issues direct-to-bucket upload URLs.
type ImageUploadSigner interface {
	PresignProductImage(ctx context.Context, productID uint, filename, contentType string) (*storage.PresignedUpload, error)
}

type ProductImageService interface {
	Create(input CreateProductImageInput) (*model.ProductImage, error)
	// List returns images in display order. A non-nil productID must name an existing product.
	List(productID *uint) ([]model.ProductImage, error)
	Get(id uint) (*model.ProductImage, error)
	Update(id uint, input UpdateProductImageInput) (*model.ProductImage, error)
	Delete(id uint) (*model.ProductImage, error)
	UploadURL(ctx context.Context, input UploadURLInput) (*storage.PresignedUpload, error)
}

type productImageService struct {
	imageRepo   repository.ProductImageRepository
	productRepo repository.ProductRepository
	signer      ImageUploadSigner
}

// NewProductImageService builds the image service. signer may be nil when no bucket is configured.
func NewProductImageService(
	imageRepo repository.ProductImageRepository,
	productRepo repository.ProductRepository,
	signer ImageUploadSigner,
) ProductImageService {
	return &productImageService{
		imageRepo:   imageRepo,
		productRepo: productRepo,
		signer:      signer,
	}
}

func (s *productImageService) Create(input CreateProductImageInput) (*model.ProductImage, error) {
	if err := requireReference(s.productRepo.Exists, "product", input.ProductID); err != nil {
		return nil, err
	}

	image := &model.ProductImage{
		ProductID: input.ProductID,
		URL:       input.URL,
		AltText:   input.AltText,
	}
	if input.Position != nil {
		image.Position = *input.Position
	} else {
		next, err := s.imageRepo.NextPosition(input.ProductID)
		if err != nil {
			return nil, err
		}
		image.Position = next
	}

	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}

	logger.Info("Product image created", map[string]interface{}{
		"image_id":   image.ID,
		"product_id": image.ProductID,
		"position":   image.Position,
	})
	return image, nil
}

func (s *productImageService) List(productID *uint) ([]model.ProductImage, error) {
	if productID != nil {
		if err := requireReference(s.productRepo.Exists, "product", *productID); err != nil {
			return nil, err
		}
	}
	return s.imageRepo.FindAll(productID)
}

func (s *productImageService) Get(id uint) (*model.ProductImage, error) {
	image, err := s.imageRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrImageNotFound)
	}
	return image, nil
}

func (s *productImageService) Update(id uint, input UpdateProductImageInput) (*model.ProductImage, error) {
	image, err := s.imageRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrImageNotFound)
	}

	if input.URL != nil {
		image.URL = *input.URL
	}
	if input.AltText != nil {
		image.AltText = *input.AltText
	}
	if input.Position != nil {
		image.Position = *input.Position
	}

	if err := s.imageRepo.Update(image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *productImageService) Delete(id uint) (*model.ProductImage, error) {
	image, err := s.imageRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrImageNotFound)
	}

	if err := s.imageRepo.Delete(id); err != nil {
		return nil, err
	}

	logger.Info("Product image deleted", map[string]interface{}{
		"image_id": id,
	})
	return image, nil
}

// UploadURL presigns an upload for a new image of an existing product. The
// client registers the returned file URL with Create once the upload is done.
func (s *productImageService) UploadURL(ctx context.Context, input UploadURLInput) (*storage.PresignedUpload, error) {
	if s.signer == nil {
		return nil, ErrUploadNotConfigured
	}
	if err := requireReference(s.productRepo.Exists, "product", input.ProductID); err != nil {
		return nil, err
	}
	return s.signer.PresignProductImage(ctx, input.ProductID, input.Filename, input.ContentType)
}
