package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"gorm.io/gorm"
)

func TestProductRepository_FindByID_LoadsRelations(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewProductRepository(conn)
	imageRepo := NewProductImageRepository(conn)

	owner := seedUser(t, conn, "ana")
	store := seedStore(t, conn, owner, "Bazar")
	category := seedCategory(t, conn, "moda", nil)
	product := seedProduct(t, conn, store, category, "Camiseta")

	require.NoError(t, imageRepo.Create(&model.ProductImage{ProductID: product.ID, URL: "https://cdn/b.jpg", Position: 1}))
	require.NoError(t, imageRepo.Create(&model.ProductImage{ProductID: product.ID, URL: "https://cdn/a.jpg", Position: 0}))

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)

	require.NotNil(t, found.Store)
	assert.Equal(t, "Bazar", found.Store.Name)
	require.NotNil(t, found.Category)
	assert.Equal(t, "moda", found.Category.Name)
	require.Len(t, found.Images, 2)
	assert.Equal(t, "https://cdn/a.jpg", found.Images[0].URL)

	_, err = repo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_FindAll_Filters(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewProductRepository(conn)

	owner := seedUser(t, conn, "ana")
	bazar := seedStore(t, conn, owner, "Bazar")
	emporio := seedStore(t, conn, owner, "Empório")
	moda := seedCategory(t, conn, "moda", nil)
	casa := seedCategory(t, conn, "casa", nil)

	seedProduct(t, conn, bazar, moda, "Camiseta")
	seedProduct(t, conn, bazar, casa, "Vaso")
	seedProduct(t, conn, emporio, moda, "Calça")

	tests := []struct {
		name   string
		filter ProductFilter
		want   []string
	}{
		{name: "No filter", filter: ProductFilter{}, want: []string{"Camiseta", "Vaso", "Calça"}},
		{name: "By category", filter: ProductFilter{CategoryID: &moda.ID}, want: []string{"Camiseta", "Calça"}},
		{name: "By store", filter: ProductFilter{StoreID: &bazar.ID}, want: []string{"Camiseta", "Vaso"}},
		{name: "By both", filter: ProductFilter{StoreID: &emporio.ID, CategoryID: &casa.ID}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.FindAll(tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(products))
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestProductRepository_Update_LeavesRelationsAlone(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewProductRepository(conn)

	owner := seedUser(t, conn, "ana")
	store := seedStore(t, conn, owner, "Bazar")
	category := seedCategory(t, conn, "moda", nil)
	product := seedProduct(t, conn, store, category, "Camiseta")

	loaded, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	loaded.Stock = 0
	loaded.Store.Name = "changed through association"
	require.NoError(t, repo.Update(loaded))

	reloaded, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Stock)
	assert.Equal(t, "Bazar", reloaded.Store.Name)
}

func TestStoreRepository_DeleteCascades(t *testing.T) {
	conn := setupRepositoryTest(t)
	storeRepo := NewStoreRepository(conn)
	productRepo := NewProductRepository(conn)
	imageRepo := NewProductImageRepository(conn)

	owner := seedUser(t, conn, "ana")
	store := seedStore(t, conn, owner, "Bazar")
	category := seedCategory(t, conn, "moda", nil)
	product := seedProduct(t, conn, store, category, "Camiseta")
	require.NoError(t, imageRepo.Create(&model.ProductImage{ProductID: product.ID, URL: "https://cdn/a.jpg"}))

	require.NoError(t, storeRepo.Delete(store.ID))

	ok, err := productRepo.Exists(product.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	images, err := imageRepo.FindAll(&product.ID)
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestStoreRepository_FindByUserID(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewStoreRepository(conn)

	ana := seedUser(t, conn, "ana")
	bruno := seedUser(t, conn, "bruno")
	bazar := seedStore(t, conn, ana, "Bazar")
	seedStore(t, conn, bruno, "Empório")
	category := seedCategory(t, conn, "moda", nil)
	seedProduct(t, conn, bazar, category, "Camiseta")

	stores, err := repo.FindByUserID(ana.ID)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	require.Len(t, stores[0].Products, 1)
	require.NotNil(t, stores[0].Products[0].Category)
	assert.Equal(t, "moda", stores[0].Products[0].Category.Name)
}

func TestProductImageRepository_NextPosition(t *testing.T) {
	conn := setupRepositoryTest(t)
	repo := NewProductImageRepository(conn)

	owner := seedUser(t, conn, "ana")
	store := seedStore(t, conn, owner, "Bazar")
	category := seedCategory(t, conn, "moda", nil)
	product := seedProduct(t, conn, store, category, "Camiseta")

	next, err := repo.NextPosition(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	require.NoError(t, repo.Create(&model.ProductImage{ProductID: product.ID, URL: "https://cdn/a.jpg", Position: 4}))

	next, err = repo.NextPosition(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, next)
}
