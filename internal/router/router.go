package router

import (
	"github.com/gin-gonic/gin"
	"github.com/vitrine/marketplace-backend/config"
	"github.com/vitrine/marketplace-backend/internal/app/controller"
	apperrors "github.com/vitrine/marketplace-backend/internal/errors"
	"github.com/vitrine/marketplace-backend/internal/middleware"
)

type Router struct {
	authController          *controller.AuthController
	userController          *controller.UserController
	storeController         *controller.StoreController
	categoryController      *controller.CategoryController
	productController       *controller.ProductController
	productImageController  *controller.ProductImageController
	storeReviewController   *controller.StoreReviewController
	productReviewController *controller.ProductReviewController
	commentController       *controller.CommentController
	authMiddleware          *middleware.AuthMiddleware
	config                  *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	storeController *controller.StoreController,
	categoryController *controller.CategoryController,
	productController *controller.ProductController,
	productImageController *controller.ProductImageController,
	storeReviewController *controller.StoreReviewController,
	productReviewController *controller.ProductReviewController,
	commentController *controller.CommentController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:          authController,
		userController:          userController,
		storeController:         storeController,
		categoryController:      categoryController,
		productController:       productController,
		productImageController:  productImageController,
		storeReviewController:   storeReviewController,
		productReviewController: productReviewController,
		commentController:       commentController,
		authMiddleware:          authMiddleware,
		config:                  cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)
	apperrors.RegisterJSONTagNames()

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Marketplace API is running",
		})
	})

	requireAuth := r.authMiddleware.Authenticate()

	auth := router.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.authController.Login)
		auth.GET("/me", requireAuth, r.authController.Me)
		auth.POST("/logout", requireAuth, r.authController.Logout)
	}

	users := router.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("", r.userController.List)
		users.GET("/:id", r.userController.Get)
		users.PATCH("/:id", r.userController.Update)
		users.DELETE("/:id", r.userController.Delete)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.GET("/:id", r.categoryController.Get)
		categories.POST("", requireAuth, r.categoryController.Create)
		categories.PATCH("/:id", requireAuth, r.categoryController.Update)
		categories.DELETE("/:id", requireAuth, r.categoryController.Delete)
	}

	images := router.Group("/product-images")
	{
		images.GET("", r.productImageController.List)
		images.GET("/:id", r.productImageController.Get)
		images.POST("", requireAuth, r.productImageController.Create)
		images.POST("/upload-url", requireAuth, r.productImageController.UploadURL)
		images.PATCH("/:id", requireAuth, r.productImageController.Update)
		images.DELETE("/:id", requireAuth, r.productImageController.Delete)
	}

	stores := router.Group("/loja")
	{
		stores.GET("", r.storeController.List)
		stores.GET("/my-stores", requireAuth, r.storeController.MyStores)
		stores.GET("/:id", r.storeController.Get)
		stores.POST("", requireAuth, r.storeController.Create)
		stores.PATCH("/:id", requireAuth, r.storeController.Update)
		stores.DELETE("/:id", requireAuth, r.storeController.Delete)
	}

	products := router.Group("/product")
	{
		products.GET("", r.productController.List)
		products.GET("/categoria/:categoriaId", r.productController.ListByCategory)
		products.GET("/loja/:lojaId", r.productController.ListByStore)
		products.GET("/:id", r.productController.Get)
		products.POST("", requireAuth, r.productController.Create)
		products.PATCH("/:id", requireAuth, r.productController.Update)
		products.DELETE("/:id", requireAuth, r.productController.Delete)
	}

	// Legacy product routes kept for older clients.
	produtos := router.Group("/produto")
	{
		produtos.GET("", r.productController.List)
		produtos.GET("/:id", r.productController.Get)
		produtos.POST("", requireAuth, r.productController.Create)
		produtos.PUT("/:id", requireAuth, r.productController.Update)
		produtos.DELETE("/:id", requireAuth, r.productController.Delete)
	}

	storeReviews := router.Group("/store-reviews")
	{
		storeReviews.GET("", r.storeReviewController.List)
		storeReviews.GET("/:id", r.storeReviewController.Get)
		storeReviews.POST("", requireAuth, r.storeReviewController.Create)
		storeReviews.PATCH("/:id", requireAuth, r.storeReviewController.Update)
		storeReviews.DELETE("/:id", requireAuth, r.storeReviewController.Delete)
	}

	productReviews := router.Group("/product-reviews")
	{
		productReviews.GET("", r.productReviewController.List)
		productReviews.GET("/:id", r.productReviewController.Get)
		productReviews.POST("", requireAuth, r.productReviewController.Create)
		productReviews.PATCH("/:id", requireAuth, r.productReviewController.Update)
		productReviews.DELETE("/:id", requireAuth, r.productReviewController.Delete)
	}

	comments := router.Group("/comments")
	comments.Use(requireAuth)
	{
		comments.GET("", r.commentController.List)
		comments.GET("/:id", r.commentController.Get)
		comments.POST("", r.commentController.Create)
		comments.PATCH("/:id", r.commentController.Update)
		comments.DELETE("/:id", r.commentController.Delete)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed && origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
