package service

import (
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	apperrors "github.com/vitrine/marketplace-backend/internal/errors"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"github.com/vitrine/marketplace-backend/pkg/util"
)

type CreateCategoryInput struct {
	Name        string `json:"nome" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=120"`
	Description string `json:"descricao"`
	ParentID    *uint  `json:"categoriaPaiId"`
}

// UpdateCategoryInput patches a category. A ParentID of 0 turns it into a root.
type UpdateCategoryInput struct {
	Name        *string `json:"nome" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=120"`
	Description *string `json:"descricao"`
	ParentID    *uint   `json:"categoriaPaiId"`
}

type CategoryService interface {
	Create(input CreateCategoryInput) (*model.Category, error)
	List(filter repository.CategoryFilter) ([]model.Category, error)
	Get(id uint) (*model.Category, error)
	GetBySlug(slug string) (*model.Category, error)
	Update(id uint, input UpdateCategoryInput) (*model.Category, error)
	Delete(id uint) (*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(input CreateCategoryInput) (*model.Category, error) {
	name, err := requiredText("nome", input.Name)
	if err != nil {
		return nil, err
	}
	slug := input.Slug
	if slug == "" {
		slug = name
	}
	slug = util.Slugify(slug)
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	category := &model.Category{
		Name:        name,
		Slug:        slug,
		Description: input.Description,
	}

	if input.ParentID != nil && *input.ParentID != 0 {
		if err := requireReference(s.categoryRepo.Exists, "category", *input.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = input.ParentID
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if apperrors.IsDuplicateOn(err, "slug") {
			return nil, ErrCategorySlugExists
		}
		return nil, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return category, nil
}

func (s *categoryService) List(filter repository.CategoryFilter) ([]model.Category, error) {
	return s.categoryRepo.FindAll(filter)
}

func (s *categoryService) Get(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return category, nil
}

func (s *categoryService) GetBySlug(slug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(util.Slugify(slug))
	if err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return category, nil
}

func (s *categoryService) Update(id uint, input UpdateCategoryInput) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}

	if input.Name != nil {
		if category.Name, err = requiredText("nome", *input.Name); err != nil {
			return nil, err
		}
	}
	if input.Slug != nil {
		slug := util.Slugify(*input.Slug)
		if slug == "" {
			return nil, ErrInvalidSlug
		}
		category.Slug = slug
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.ParentID != nil {
		if *input.ParentID == 0 {
			category.ParentID = nil
		} else {
			if err := s.checkParent(id, *input.ParentID); err != nil {
				return nil, err
			}
			parentID := *input.ParentID
			category.ParentID = &parentID
		}
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if apperrors.IsDuplicateOn(err, "slug") {
			return nil, ErrCategorySlugExists
		}
		return nil, err
	}

	logger.Info("Category updated", map[string]interface{}{
		"category_id": id,
	})
	return category, nil
}

// checkParent rejects parents that are missing or that would close a cycle.
func (s *categoryService) checkParent(id, parentID uint) error {
	if err := requireReference(s.categoryRepo.Exists, "category", parentID); err != nil {
		return err
	}

	current := &parentID
	for current != nil {
		if *current == id {
			logger.Warn("Rejected cyclic category parent", map[string]interface{}{
				"category_id": id,
				"parent_id":   parentID,
			})
			return ErrInvalidParent
		}
		next, err := s.categoryRepo.ParentID(*current)
		if err != nil {
			return err
		}
		current = next
	}
	return nil
}

// Delete removes the category. Its sub-categories become roots.
func (s *categoryService) Delete(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			logger.Warn("Category delete blocked by products", map[string]interface{}{
				"category_id": id,
			})
			return nil, ErrStillReferenced
		}
		return nil, err
	}

	logger.Info("Category deleted", map[string]interface{}{
		"category_id": id,
	})
	return category, nil
}
