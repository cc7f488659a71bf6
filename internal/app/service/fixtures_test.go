package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/internal/db"
	"gorm.io/gorm"
)

const testJWTSecret = "test-jwt-secret"

type testServices struct {
	conn           *gorm.DB
	users          UserService
	auth           AuthService
	stores         StoreService
	categories     CategoryService
	products       ProductService
	images         ProductImageService
	storeReviews   StoreReviewService
	productReviews ProductReviewService
	comments       CommentService
}

func setupServiceTest(t *testing.T, revoker TokenRevoker) *testServices {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	imageRepo := repository.NewProductImageRepository(testDB)
	storeReviewRepo := repository.NewStoreReviewRepository(testDB)
	productReviewRepo := repository.NewProductReviewRepository(testDB)
	commentRepo := repository.NewCommentRepository(testDB)

	users := NewUserService(userRepo)
	return &testServices{
		conn:           testDB,
		users:          users,
		auth:           NewAuthService(users, revoker, testJWTSecret, time.Hour),
		stores:         NewStoreService(storeRepo, userRepo),
		categories:     NewCategoryService(categoryRepo),
		products:       NewProductService(productRepo, storeRepo, categoryRepo),
		images:         NewProductImageService(imageRepo, productRepo, nil),
		storeReviews:   NewStoreReviewService(storeReviewRepo, storeRepo, userRepo),
		productReviews: NewProductReviewService(productReviewRepo, productRepo, userRepo),
		comments:       NewCommentService(commentRepo, storeReviewRepo, productReviewRepo, userRepo),
	}
}

func (s *testServices) user(t *testing.T, username string) *model.SafeUser {
	user, err := s.users.Create(CreateUserInput{
		Username: username,
		Name:     "Usuario " + username,
		Email:    username + "@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func (s *testServices) store(t *testing.T, owner *model.SafeUser, name string) *model.Store {
	store, err := s.stores.Create(owner.ID, CreateStoreInput{Name: name})
	require.NoError(t, err)
	return store
}

func (s *testServices) category(t *testing.T, name string) *model.Category {
	category, err := s.categories.Create(CreateCategoryInput{Name: name})
	require.NoError(t, err)
	return category
}

func (s *testServices) product(t *testing.T, store *model.Store, category *model.Category, name string) *model.Product {
	product, err := s.products.Create(CreateProductInput{
		StoreID:    store.ID,
		CategoryID: category.ID,
		Name:       name,
		Price:      int64Ptr(2500),
	})
	require.NoError(t, err)
	return product
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
