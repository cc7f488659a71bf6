package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/internal/app/service"
)

type StoreReviewController struct {
	reviewService service.StoreReviewService
}

func NewStoreReviewController(reviewService service.StoreReviewService) *StoreReviewController {
	return &StoreReviewController{reviewService: reviewService}
}

func (ctrl *StoreReviewController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateStoreReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := ctrl.reviewService.Create(userID, req)
	if err != nil {
		respondError(c, err, "create store review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// List handles GET /store-reviews with an optional ?lojaId= filter.
func (ctrl *StoreReviewController) List(c *gin.Context) {
	storeID, ok := queryID(c, "lojaId")
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.List(storeID)
	if err != nil {
		respondError(c, err, "list store reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (ctrl *StoreReviewController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := ctrl.reviewService.Get(id)
	if err != nil {
		respondError(c, err, "get store review")
		return
	}
	c.JSON(http.StatusOK, review)
}

func (ctrl *StoreReviewController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := ctrl.reviewService.Update(id, req)
	if err != nil {
		respondError(c, err, "update store review")
		return
	}
	c.JSON(http.StatusOK, review)
}

func (ctrl *StoreReviewController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := ctrl.reviewService.Delete(id)
	if err != nil {
		respondError(c, err, "delete store review")
		return
	}
	c.JSON(http.StatusOK, review)
}

type ProductReviewController struct {
	reviewService service.ProductReviewService
}

func NewProductReviewController(reviewService service.ProductReviewService) *ProductReviewController {
	return &ProductReviewController{reviewService: reviewService}
}

func (ctrl *ProductReviewController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateProductReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := ctrl.reviewService.Create(userID, req)
	if err != nil {
		respondError(c, err, "create product review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// List handles GET /product-reviews with an optional ?produtoId= filter.
func (ctrl *ProductReviewController) List(c *gin.Context) {
	productID, ok := queryID(c, "produtoId")
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.List(productID)
	if err != nil {
		respondError(c, err, "list product reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (ctrl *ProductReviewController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := ctrl.reviewService.Get(id)
	if err != nil {
		respondError(c, err, "get product review")
		return
	}
	c.JSON(http.StatusOK, review)
}

func (ctrl *ProductReviewController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateReviewInput
	if !bindJSON(c, &req) {
		return
	}

	review, err := ctrl.reviewService.Update(id, req)
	if err != nil {
		respondError(c, err, "update product review")
		return
	}
	c.JSON(http.StatusOK, review)
}

func (ctrl *ProductReviewController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := ctrl.reviewService.Delete(id)
	if err != nil {
		respondError(c, err, "delete product review")
		return
	}
	c.JSON(http.StatusOK, review)
}
