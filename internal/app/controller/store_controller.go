package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/internal/app/service"
	"github.com/vitrine/marketplace-backend/internal/middleware"
)

type StoreController struct {
	storeService service.StoreService
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{storeService: storeService}
}

// Create handles POST /loja. The caller becomes the owner.
func (ctrl *StoreController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateStoreInput
	if !bindJSON(c, &req) {
		return
	}

	store, err := ctrl.storeService.Create(userID, req)
	if err != nil {
		respondError(c, err, "create store")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Store opened", map[string]interface{}{
		"store_id": store.ID,
		"user_id":  userID,
	})
	c.JSON(http.StatusCreated, store)
}

func (ctrl *StoreController) List(c *gin.Context) {
	stores, err := ctrl.storeService.List()
	if err != nil {
		respondError(c, err, "list stores")
		return
	}
	c.JSON(http.StatusOK, stores)
}

// MyStores handles GET /loja/my-stores
func (ctrl *StoreController) MyStores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stores, err := ctrl.storeService.ListByOwner(userID)
	if err != nil {
		respondError(c, err, "list stores")
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (ctrl *StoreController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	store, err := ctrl.storeService.Get(id)
	if err != nil {
		respondError(c, err, "get store")
		return
	}
	c.JSON(http.StatusOK, store)
}

func (ctrl *StoreController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateStoreInput
	if !bindJSON(c, &req) {
		return
	}

	store, err := ctrl.storeService.Update(id, req)
	if err != nil {
		respondError(c, err, "update store")
		return
	}
	c.JSON(http.StatusOK, store)
}

func (ctrl *StoreController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	store, err := ctrl.storeService.Delete(id)
	if err != nil {
		respondError(c, err, "delete store")
		return
	}
	c.JSON(http.StatusOK, store)
}
