package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/db"
	"gorm.io/gorm"
)

func setupRepositoryTest(t *testing.T) *gorm.DB {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB
}

func seedUser(t *testing.T, conn *gorm.DB, username string) *model.User {
	user := &model.User{
		Username:     username,
		Name:         "User " + username,
		Email:        fmt.Sprintf("%s@x.com", username),
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, conn.Create(user).Error)
	return user
}

func seedStore(t *testing.T, conn *gorm.DB, owner *model.User, name string) *model.Store {
	store := &model.Store{UserID: owner.ID, Name: name, Description: "Loja " + name}
	require.NoError(t, conn.Create(store).Error)
	return store
}

func seedCategory(t *testing.T, conn *gorm.DB, name string, parentID *uint) *model.Category {
	category := &model.Category{Name: name, Slug: fmt.Sprintf("cat-%s", name), ParentID: parentID}
	require.NoError(t, conn.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, conn *gorm.DB, store *model.Store, category *model.Category, name string) *model.Product {
	product := &model.Product{
		StoreID:    store.ID,
		CategoryID: category.ID,
		Name:       name,
		Price:      1990,
		Stock:      5,
	}
	require.NoError(t, conn.Create(product).Error)
	return product
}
