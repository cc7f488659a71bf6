package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine/marketplace-backend/internal/app/model"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/internal/app/service"
	"github.com/vitrine/marketplace-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		CategorySheet: {
			{"slug", "nome", "descricao", "categoria_pai_slug"},
			{"cozinha", "Cozinha", "", "casa"},
			{"casa", "Casa", "Tudo para casa", ""},
			{"sem-nome", "", "", ""},
		},
		ProductSheet: {
			{"loja_id", "categoria_slug", "nome", "descricao", "preco_centavos", "estoque"},
			{"1", "cozinha", "Panela", "Inox", "15990", "3"},
			{"1", "cozinha", "Colher", "", "990", ""},
			{"x", "cozinha", "Garfo", "", "990", "1"},
			{"1", "cozinha", "Faca", "", "-5", "1"},
		},
	})

	catalog, err := ReadFile(path)
	require.NoError(t, err)

	require.Len(t, catalog.Categories, 2)
	assert.Equal(t, CategoryRow{Line: 2, Name: "Cozinha", Slug: "cozinha", ParentSlug: "casa"}, catalog.Categories[0])

	require.Len(t, catalog.Products, 2)
	assert.Equal(t, ProductRow{Line: 2, StoreID: 1, CategorySlug: "cozinha", Name: "Panela", Description: "Inox", PriceCents: 15990, Stock: 3}, catalog.Products[0])
	assert.Equal(t, 0, catalog.Products[1].Stock)

	require.Len(t, catalog.Skipped, 3)
	assert.Equal(t, RowError{Sheet: CategorySheet, Line: 4, Reason: "nome vazio"}, catalog.Skipped[0])
	assert.Equal(t, ProductSheet, catalog.Skipped[1].Sheet)
	assert.Equal(t, 4, catalog.Skipped[1].Line)
}

func TestReadFile_MissingSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		CategorySheet: {{"nome"}, {"Casa"}},
	})

	catalog, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, catalog.Categories, 1)
	assert.Empty(t, catalog.Products)
}

func TestImporter_Import(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	owner := &model.User{Username: "ana", Name: "Ana", Email: "ana@x.com", PasswordHash: "x"}
	require.NoError(t, testDB.Create(owner).Error)
	store := &model.Store{UserID: owner.ID, Name: "Loja"}
	require.NoError(t, testDB.Create(store).Error)

	storeRepo := repository.NewStoreRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	categories := service.NewCategoryService(categoryRepo)
	products := service.NewProductService(productRepo, storeRepo, categoryRepo)
	importer := NewImporter(categories, products)

	catalog := &Catalog{
		Categories: []CategoryRow{
			{Line: 2, Name: "Cozinha", ParentSlug: "casa"},
			{Line: 3, Name: "Casa"},
			{Line: 4, Name: "Orfã", ParentSlug: "nao-existe"},
		},
		Products: []ProductRow{
			{Line: 2, StoreID: store.ID, CategorySlug: "cozinha", Name: "Panela", PriceCents: 15990, Stock: 3},
			{Line: 3, StoreID: 9999, CategorySlug: "cozinha", Name: "Fantasma", PriceCents: 100},
			{Line: 4, StoreID: store.ID, CategorySlug: "jardim", Name: "Pá", PriceCents: 100},
		},
	}

	result := importer.Import(catalog)
	assert.Equal(t, 2, result.CategoriesCreated)
	assert.Equal(t, 1, result.ProductsCreated)
	require.Len(t, result.Failed, 3)

	cozinha, err := categories.GetBySlug("cozinha")
	require.NoError(t, err)
	require.NotNil(t, cozinha.ParentID)

	again := importer.Import(&Catalog{Categories: catalog.Categories[:2]})
	assert.Equal(t, 0, again.CategoriesCreated)
	assert.Equal(t, 2, again.CategoriesExisting)
}
