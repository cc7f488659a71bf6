package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/internal/app/service"
)

// ProductController serves both the /product and the /produto route families.
type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func (ctrl *ProductController) Create(c *gin.Context) {
	var req service.CreateProductInput
	if !bindJSON(c, &req) {
		return
	}

	product, err := ctrl.productService.Create(req)
	if err != nil {
		respondError(c, err, "create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// List handles GET /product with optional ?categoria= and ?loja= filters.
func (ctrl *ProductController) List(c *gin.Context) {
	categoryID, ok := queryID(c, "categoria")
	if !ok {
		return
	}
	storeID, ok := queryID(c, "loja")
	if !ok {
		return
	}

	ctrl.list(c, repository.ProductFilter{CategoryID: categoryID, StoreID: storeID})
}

// ListByCategory handles GET /product/categoria/:categoriaId
func (ctrl *ProductController) ListByCategory(c *gin.Context) {
	id, ok := parseID(c, "categoriaId")
	if !ok {
		return
	}
	ctrl.list(c, repository.ProductFilter{CategoryID: &id})
}

// ListByStore handles GET /product/loja/:lojaId
func (ctrl *ProductController) ListByStore(c *gin.Context) {
	id, ok := parseID(c, "lojaId")
	if !ok {
		return
	}
	ctrl.list(c, repository.ProductFilter{StoreID: &id})
}

func (ctrl *ProductController) list(c *gin.Context, filter repository.ProductFilter) {
	products, err := ctrl.productService.List(filter)
	if err != nil {
		respondError(c, err, "list products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ctrl *ProductController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.Get(id)
	if err != nil {
		respondError(c, err, "get product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update handles PATCH /product/:id and PUT /produto/:id. Both only touch the fields sent.
func (ctrl *ProductController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProductInput
	if !bindJSON(c, &req) {
		return
	}

	product, err := ctrl.productService.Update(id, req)
	if err != nil {
		respondError(c, err, "update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ctrl *ProductController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.productService.Delete(id)
	if err != nil {
		respondError(c, err, "delete product")
		return
	}
	c.JSON(http.StatusOK, product)
}
