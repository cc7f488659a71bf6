package catalog

import (
	"errors"

	"github.com/vitrine/marketplace-backend/internal/app/service"
	"github.com/vitrine/marketplace-backend/pkg/logger"
	"github.com/vitrine/marketplace-backend/pkg/util"
)

type Result struct {
	CategoriesCreated  int
	CategoriesExisting int
	ProductsCreated    int
	Failed             []RowError
}

// Importer writes a Catalog through the services so every row gets the same
// validation and reference checks as the HTTP API.
type Importer struct {
	categories service.CategoryService
	products   service.ProductService
}

func NewImporter(categories service.CategoryService, products service.ProductService) *Importer {
	return &Importer{categories: categories, products: products}
}

func (im *Importer) Import(c *Catalog) Result {
	var result Result
	im.importCategories(c.Categories, &result)
	im.importProducts(c.Products, &result)

	logger.Info("Catalog import finished", map[string]interface{}{
		"categories_created":  result.CategoriesCreated,
		"categories_existing": result.CategoriesExisting,
		"products_created":    result.ProductsCreated,
		"failed":              len(result.Failed),
	})
	return result
}

// importCategories creates categories in passes so a child may appear before
// its parent in the sheet. Rows are idempotent on slug.
func (im *Importer) importCategories(rows []CategoryRow, result *Result) {
	pending := rows
	for len(pending) > 0 {
		var deferred []CategoryRow
		for _, row := range pending {
			done, err := im.importCategory(row, result)
			if err != nil {
				result.Failed = append(result.Failed, RowError{Sheet: CategorySheet, Line: row.Line, Reason: err.Error()})
				continue
			}
			if !done {
				deferred = append(deferred, row)
			}
		}

		if len(deferred) == len(pending) {
			for _, row := range deferred {
				result.Failed = append(result.Failed, RowError{
					Sheet:  CategorySheet,
					Line:   row.Line,
					Reason: "categoria pai não encontrada: " + row.ParentSlug,
				})
			}
			return
		}
		pending = deferred
	}
}

// importCategory returns false when the parent does not exist yet.
func (im *Importer) importCategory(row CategoryRow, result *Result) (bool, error) {
	slug := row.Slug
	if slug == "" {
		slug = row.Name
	}
	if _, err := im.categories.GetBySlug(util.Slugify(slug)); err == nil {
		result.CategoriesExisting++
		return true, nil
	} else if !errors.Is(err, service.ErrCategoryNotFound) {
		return false, err
	}

	input := service.CreateCategoryInput{
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
	}
	if row.ParentSlug != "" {
		parent, err := im.categories.GetBySlug(row.ParentSlug)
		if errors.Is(err, service.ErrCategoryNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		input.ParentID = &parent.ID
	}

	if _, err := im.categories.Create(input); err != nil {
		return false, err
	}
	result.CategoriesCreated++
	return true, nil
}

func (im *Importer) importProducts(rows []ProductRow, result *Result) {
	categoryIDs := make(map[string]uint)

	for _, row := range rows {
		slug := util.Slugify(row.CategorySlug)
		categoryID, ok := categoryIDs[slug]
		if !ok {
			category, err := im.categories.GetBySlug(slug)
			if err != nil {
				result.Failed = append(result.Failed, RowError{Sheet: ProductSheet, Line: row.Line, Reason: "categoria não encontrada: " + row.CategorySlug})
				continue
			}
			categoryID = category.ID
			categoryIDs[slug] = categoryID
		}

		price := row.PriceCents
		stock := row.Stock
		_, err := im.products.Create(service.CreateProductInput{
			StoreID:     row.StoreID,
			CategoryID:  categoryID,
			Name:        row.Name,
			Description: row.Description,
			Price:       &price,
			Stock:       &stock,
		})
		if err != nil {
			result.Failed = append(result.Failed, RowError{Sheet: ProductSheet, Line: row.Line, Reason: err.Error()})
			continue
		}
		result.ProductsCreated++
	}
}
