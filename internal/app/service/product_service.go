package service

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

type CreateProductInput struct {
	StoreID     uint   `json:"lojaId" binding:"required"`
	CategoryID  uint   `json:"categoriaId" binding:"required"`
	Name        string `json:"nome" binding:"required,max=200"`
	Description string `json:"descricao"`
	Price       *int64 `json:"preco" binding:"required,gte=0"`
	Stock       *int   `json:"estoque" binding:"omitempty,gte=0"`
}

type UpdateProductInput struct {
	StoreID     *uint   `json:"lojaId" binding:"omitempty,min=1"`
	CategoryID  *uint   `json:"categoriaId" binding:"omitempty,min=1"`
	Name        *string `json:"nome" binding:"omitempty,min=1,max=200"`
	Description *string `json:"descricao"`
	Price       *int64  `json:"preco" binding:"omitempty,gte=0"`
	Stock       *int    `json:"estoque" binding:"omitempty,gte=0"`
}

type ProductService interface {
	Create(input CreateProductInput) (*model.Product, error)
	List(filter repository.ProductFilter) ([]model.Product, error)
	Get(id uint) (*model.Product, error)
	Update(id uint, input UpdateProductInput) (*model.Product, error)
	Delete(id uint) (*model.Product, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *productService) Create(input CreateProductInput) (*model.Product, error) {
	name, err := requiredText("nome", input.Name)
	if err != nil {
		return nil, err
	}
	if err := requireReference(s.storeRepo.Exists, "store", input.StoreID); err != nil {
		return nil, err
	}
	if err := requireReference(s.categoryRepo.Exists, "category", input.CategoryID); err != nil {
		return nil, err
	}

	product := &model.Product{
		StoreID:     input.StoreID,
		CategoryID:  input.CategoryID,
		Name:        name,
		Description: input.Description,
		Price:       *input.Price,
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"store_id":   product.StoreID,
	})
	return s.Get(product.ID)
}

// List returns products in id order, optionally narrowed by category and store.
func (s *productService) List(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(filter)
}

func (s *productService) Get(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	return product, nil
}

func (s *productService) Update(id uint, input UpdateProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}

	if input.StoreID != nil && *input.StoreID != product.StoreID {
		if err := requireReference(s.storeRepo.Exists, "store", *input.StoreID); err != nil {
			return nil, err
		}
		product.StoreID = *input.StoreID
	}
	if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
		if err := requireReference(s.categoryRepo.Exists, "category", *input.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		if product.Name, err = requiredText("nome", *input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": id,
	})
	return s.Get(id)
}

// Delete removes the product with its images and reviews.
func (s *productService) Delete(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}

	if err := s.productRepo.Delete(id); err != nil {
		return nil, err
	}

	logger.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})
	return product, nil
}
