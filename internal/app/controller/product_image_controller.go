package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/internal/app/service"
	"github.com/vitrine/marketplace-backend/internal/middleware"
)

type ProductImageController struct {
	imageService service.ProductImageService
}

func NewProductImageController(imageService service.ProductImageService) *ProductImageController {
	return &ProductImageController{imageService: imageService}
}

func (ctrl *ProductImageController) Create(c *gin.Context) {
	var req service.CreateProductImageInput
	if !bindJSON(c, &req) {
		return
	}

	image, err := ctrl.imageService.Create(req)
	if err != nil {
		respondError(c, err, "create product image")
		return
	}
	c.JSON(http.StatusCreated, image)
}

// List handles GET /product-images with an optional ?productId= filter.
func (ctrl *ProductImageController) List(c *gin.Context) {
	productID, ok := queryID(c, "productId")
	if !ok {
		return
	}

	images, err := ctrl.imageService.List(productID)
	if err != nil {
		respondError(c, err, "list product images")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (ctrl *ProductImageController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	image, err := ctrl.imageService.Get(id)
	if err != nil {
		respondError(c, err, "get product image")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (ctrl *ProductImageController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProductImageInput
	if !bindJSON(c, &req) {
		return
	}

	image, err := ctrl.imageService.Update(id, req)
	if err != nil {
		respondError(c, err, "update product image")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (ctrl *ProductImageController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	image, err := ctrl.imageService.Delete(id)
	if err != nil {
		respondError(c, err, "delete product image")
		return
	}
	c.JSON(http.StatusOK, image)
}

// UploadURL handles POST /product-images/upload-url
func (ctrl *ProductImageController) UploadURL(c *gin.Context) {
	var req service.UploadURLInput
	if !bindJSON(c, &req) {
		return
	}

	upload, err := ctrl.imageService.UploadURL(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "presign product image")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Presigned product image upload", map[string]interface{}{
		"product_id": req.ProductID,
		"key":        upload.Key,
	})
	c.JSON(http.StatusOK, upload)
}
