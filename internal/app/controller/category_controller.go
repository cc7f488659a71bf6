package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/internal/app/service"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (ctrl *CategoryController) Create(c *gin.Context) {
	var req service.CreateCategoryInput
	if !bindJSON(c, &req) {
		return
	}

	category, err := ctrl.categoryService.Create(req)
	if err != nil {
		respondError(c, err, "create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// List handles GET /categories. ?parentId=<id> lists sub-categories, ?parentId=0 only roots.
func (ctrl *CategoryController) List(c *gin.Context) {
	parentID, ok := queryID(c, "parentId")
	if !ok {
		return
	}

	var filter repository.CategoryFilter
	if parentID != nil {
		if *parentID == 0 {
			filter.RootOnly = true
		} else {
			filter.ParentID = parentID
		}
	}

	categories, err := ctrl.categoryService.List(filter)
	if err != nil {
		respondError(c, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctrl *CategoryController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := ctrl.categoryService.Get(id)
	if err != nil {
		respondError(c, err, "get category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctrl *CategoryController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCategoryInput
	if !bindJSON(c, &req) {
		return
	}

	category, err := ctrl.categoryService.Update(id, req)
	if err != nil {
		respondError(c, err, "update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctrl *CategoryController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := ctrl.categoryService.Delete(id)
	if err != nil {
		respondError(c, err, "delete category")
		return
	}
	c.JSON(http.StatusOK, category)
}
