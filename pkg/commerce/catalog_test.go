package commerce

import (
	"context"
	"testing"

	"github.com/example/agrimart/pkg/models"
)

func TestProducts_SeedsDefaultCatalog(t *testing.T) {
	c := newTestCommerce()

	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 18 {
		t.Fatalf("Expected 18 seed products, got %d", len(products))
	}

	categories := make(map[models.Category]int)
	for _, p := range products {
		categories[p.Category]++
		if p.Stock < 0 {
			t.Errorf("Product %s has negative stock %d", p.ID, p.Stock)
		}
	}
	if len(categories) != 5 {
		t.Errorf("Expected products across 5 categories, got %d", len(categories))
	}
}

func TestProducts_SeedWrittenOnce(t *testing.T) {
	c := newTestCommerce()
	ctx := context.Background()

	if err := c.RemoveProduct(ctx, "s1"); err != nil {
		t.Fatalf("RemoveProduct failed: %v", err)
	}
	products, err := c.Products(ctx)
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 17 {
		t.Errorf("Expected 17 products after removal, got %d", len(products))
	}
}

func TestUpsertProduct_Create(t *testing.T) {
	c := newTestCommerce()
	ctx := context.Background()

	product, err := c.UpsertProduct(ctx, ProductForm{
		Name:     "Sugarcane Setts (Co-86032)",
		Category: models.CategorySeeds,
		Price:    "900",
		Stock:    60,
	}, "")
	if err != nil {
		t.Fatalf("UpsertProduct failed: %v", err)
	}
	if product.ID == "" {
		t.Fatal("Expected a generated id")
	}
	if product.Image == "" || product.Description == "" {
		t.Error("Expected defaulted image and description")
	}

	products, err := c.Products(ctx)
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 19 {
		t.Fatalf("Expected 19 products after create, got %d", len(products))
	}
	seen := make(map[string]bool)
	for _, p := range products {
		if seen[p.ID] {
			t.Errorf("Duplicate product id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestUpsertProduct_UpdatePreservesID(t *testing.T) {
	c := newTestCommerce()
	ctx := context.Background()

	updated, err := c.UpsertProduct(ctx, ProductForm{
		Name:        "NPK Fertilizer (20:20:20)",
		Category:    models.CategoryFertilizers,
		Price:       "475",
		Stock:       480,
		Image:       "https://example.com/npk.jpg",
		Description: "Rebalanced formula.",
	}, "f1")
	if err != nil {
		t.Fatalf("UpsertProduct failed: %v", err)
	}
	if updated.ID != "f1" {
		t.Errorf("Expected id f1 preserved, got %s", updated.ID)
	}
	if updated.Price != "475" || updated.Stock != 480 {
		t.Errorf("Fields not replaced: %+v", updated)
	}

	products, _ := c.Products(ctx)
	if len(products) != 18 {
		t.Errorf("Edit must not grow the catalog, got %d products", len(products))
	}
}

func TestDecrementStock_FloorsAtZero(t *testing.T) {
	c := newTestCommerce()
	ctx := context.Background()

	product, err := c.UpsertProduct(ctx, ProductForm{
		Name:     "Trial Pack",
		Category: models.CategoryOrganic,
		Price:    "100",
		Stock:    3,
	}, "")
	if err != nil {
		t.Fatalf("UpsertProduct failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := c.DecrementStock(ctx, product.ID, 1); err != nil {
			t.Fatalf("DecrementStock failed: %v", err)
		}
	}
	if got := stockOf(t, c, product.ID); got != 0 {
		t.Fatalf("Expected stock 0 after %d decrements, got %d", 3, got)
	}

	// One more never goes negative.
	if err := c.DecrementStock(ctx, product.ID, 1); err != nil {
		t.Fatalf("DecrementStock failed: %v", err)
	}
	if got := stockOf(t, c, product.ID); got != 0 {
		t.Errorf("Expected stock floored at 0, got %d", got)
	}
}

func stockOf(t *testing.T, c *Commerce, id string) int {
	t.Helper()
	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	for _, p := range products {
		if p.ID == id {
			return p.Stock
		}
	}
	t.Fatalf("Product %s not found", id)
	return 0
}
