package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vitrine/marketplace-backend/config"
	"github.com/vitrine/marketplace-backend/internal/app/repository"
	"github.com/vitrine/marketplace-backend/internal/app/service"
	"github.com/vitrine/marketplace-backend/internal/catalog"
	"github.com/vitrine/marketplace-backend/internal/db"
)

func main() {
	yes := flag.Bool("y", false, "import without asking for confirmation")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: go run ./cmd/seed [-y] <catalog.xlsx>")
	}
	filePath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	data, err := catalog.ReadFile(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Categories to import: %d\n", len(data.Categories))
	fmt.Printf("Products to import: %d\n", len(data.Products))
	for _, skipped := range data.Skipped {
		fmt.Printf("  skipped %s\n", skipped)
	}

	if !*yes {
		fmt.Print("Do you want to proceed with the import? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Import cancelled.")
			return
		}
	}

	conn := db.GetDB()
	storeRepo := repository.NewStoreRepository(conn)
	categoryRepo := repository.NewCategoryRepository(conn)
	productRepo := repository.NewProductRepository(conn)

	importer := catalog.NewImporter(
		service.NewCategoryService(categoryRepo),
		service.NewProductService(productRepo, storeRepo, categoryRepo),
	)
	result := importer.Import(data)

	fmt.Println("Import completed!")
	fmt.Printf("Categories created: %d (already present: %d)\n", result.CategoriesCreated, result.CategoriesExisting)
	fmt.Printf("Products created: %d\n", result.ProductsCreated)
	for _, failed := range result.Failed {
		fmt.Printf("  failed %s\n", failed)
	}
	if len(result.Failed) > 0 {
		os.Exit(1)
	}
}
