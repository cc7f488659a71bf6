package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	CategorySheet = "categorias"
	ProductSheet  = "produtos"
)

type CategoryRow struct {
	Line        int
	Name        string
	Slug        string
	Description string
	ParentSlug  string
}

type ProductRow struct {
	Line         int
	StoreID      uint
	CategorySlug string
	Name         string
	Description  string
	PriceCents   int64
	Stock        int
}

// RowError describes a spreadsheet row that was skipped.
type RowError struct {
	Sheet  string
	Line   int
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("%s:%d: %s", e.Sheet, e.Line, e.Reason)
}

type Catalog struct {
	Categories []CategoryRow
	Products   []ProductRow
	Skipped    []RowError
}

func ReadFile(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses both sheets. Columns are matched by header name, so their order
// does not matter. A missing sheet is treated as empty.
func Read(f *excelize.File) (*Catalog, error) {
	catalog := &Catalog{}

	categoryRows, err := sheetRows(f, CategorySheet)
	if err != nil {
		return nil, err
	}
	for _, r := range categoryRows {
		row := CategoryRow{
			Line:        r.line,
			Name:        r.get("nome"),
			Slug:        r.get("slug"),
			Description: r.get("descricao"),
			ParentSlug:  r.get("categoria_pai_slug"),
		}
		if row.Name == "" {
			catalog.skip(CategorySheet, r.line, "nome vazio")
			continue
		}
		catalog.Categories = append(catalog.Categories, row)
	}

	productRows, err := sheetRows(f, ProductSheet)
	if err != nil {
		return nil, err
	}
	for _, r := range productRows {
		row, reason := parseProduct(r)
		if reason != "" {
			catalog.skip(ProductSheet, r.line, reason)
			continue
		}
		catalog.Products = append(catalog.Products, row)
	}

	return catalog, nil
}

func parseProduct(r sheetRow) (ProductRow, string) {
	row := ProductRow{
		Line:         r.line,
		CategorySlug: r.get("categoria_slug"),
		Name:         r.get("nome"),
		Description:  r.get("descricao"),
	}
	if row.Name == "" {
		return row, "nome vazio"
	}
	if row.CategorySlug == "" {
		return row, "categoria_slug vazio"
	}

	storeID, err := strconv.ParseUint(r.get("loja_id"), 10, 32)
	if err != nil || storeID == 0 {
		return row, fmt.Sprintf("loja_id inválido %q", r.get("loja_id"))
	}
	row.StoreID = uint(storeID)

	price, err := strconv.ParseInt(r.get("preco_centavos"), 10, 64)
	if err != nil || price < 0 {
		return row, fmt.Sprintf("preco_centavos inválido %q", r.get("preco_centavos"))
	}
	row.PriceCents = price

	if raw := r.get("estoque"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return row, fmt.Sprintf("estoque inválido %q", raw)
		}
		row.Stock = stock
	}

	return row, ""
}

func (c *Catalog) skip(sheet string, line int, reason string) {
	c.Skipped = append(c.Skipped, RowError{Sheet: sheet, Line: line, Reason: reason})
}

type sheetRow struct {
	line    int
	columns map[string]int
	cells   []string
}

func (r sheetRow) get(column string) string {
	idx, ok := r.columns[column]
	if !ok || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

func sheetRows(f *excelize.File, sheet string) ([]sheetRow, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		return nil, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}

	var result []sheetRow
	for i, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}
		// Line numbers match the spreadsheet, header being line 1.
		result = append(result, sheetRow{line: i + 2, columns: columns, cells: cells})
	}
	return result, nil
}

func isBlank(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
