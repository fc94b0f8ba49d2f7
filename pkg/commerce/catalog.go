package commerce

import (
	"context"
	"fmt"
	"time"

	"github.com/example/agrimart/pkg/models"
	"github.com/example/agrimart/pkg/store"
	"go.uber.org/zap"
)

const (
	defaultProductImage       = "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?auto=format&fit=crop&q=80&w=400"
	defaultProductDescription = "Quality-checked agricultural supply."
)

// ProductForm carries the admin-editable fields of a product.
type ProductForm struct {
	Name        string          `json:"name"`
	Category    models.Category `json:"category"`
	Price       string          `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// Products returns the current catalog, writing the fixed seed set first if
// no catalog has ever been persisted.
func (c *Commerce) Products(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadCatalog(ctx)
}

// UpsertProduct replaces the mutable fields of an existing product in place,
// or creates a new one with a freshly generated id.
func (c *Commerce) UpsertProduct(ctx context.Context, form ProductForm, existingID string) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	catalog, err := c.loadCatalog(ctx)
	if err != nil {
		return models.Product{}, err
	}

	if existingID != "" {
		for i := range catalog {
			if catalog[i].ID != existingID {
				continue
			}
			catalog[i].Name = form.Name
			catalog[i].Category = form.Category
			catalog[i].Price = form.Price
			catalog[i].Stock = form.Stock
			catalog[i].Image = form.Image
			catalog[i].Description = form.Description
			if err := c.store.Set(ctx, store.KeyCatalog, catalog); err != nil {
				return models.Product{}, err
			}
			c.recordAudit("update_product", existingID, map[string]interface{}{"name": form.Name})
			return catalog[i], nil
		}
	}

	product := models.Product{
		ID:          fmt.Sprintf("%d", time.Now().UnixNano()),
		Name:        form.Name,
		Category:    form.Category,
		Price:       form.Price,
		Stock:       form.Stock,
		Image:       form.Image,
		Description: form.Description,
	}
	if product.Image == "" {
		product.Image = defaultProductImage
	}
	if product.Description == "" {
		product.Description = defaultProductDescription
	}

	catalog = append(catalog, product)
	if err := c.store.Set(ctx, store.KeyCatalog, catalog); err != nil {
		return models.Product{}, err
	}

	c.logger.Info("product added",
		zap.String("id", product.ID),
		zap.String("name", product.Name))
	c.recordAudit("add_product", product.ID, map[string]interface{}{"name": product.Name})
	return product, nil
}

// RemoveProduct filters the product out of the catalog.
func (c *Commerce) RemoveProduct(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	catalog, err := c.loadCatalog(ctx)
	if err != nil {
		return err
	}

	kept := catalog[:0]
	for _, p := range catalog {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := c.store.Set(ctx, store.KeyCatalog, kept); err != nil {
		return err
	}
	c.recordAudit("remove_product", id, nil)
	return nil
}

// DecrementStock lowers a product's stock, flooring at zero. It never
// rejects: refusing a purchase at zero stock is the order path's job.
func (c *Commerce) DecrementStock(ctx context.Context, id string, by int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	catalog, err := c.loadCatalog(ctx)
	if err != nil {
		return err
	}
	decrementStock(catalog, id, by)
	return c.store.Set(ctx, store.KeyCatalog, catalog)
}

// decrementStock applies the floor-at-zero decrement in place.
func decrementStock(catalog []models.Product, id string, by int) {
	for i := range catalog {
		if catalog[i].ID == id {
			catalog[i].Stock -= by
			if catalog[i].Stock < 0 {
				catalog[i].Stock = 0
			}
			return
		}
	}
}

// loadCatalog reads the catalog, seeding it on first use. Callers hold the
// mutation lock.
func (c *Commerce) loadCatalog(ctx context.Context) ([]models.Product, error) {
	var catalog []models.Product
	err := c.store.Get(ctx, store.KeyCatalog, &catalog)
	if err == store.ErrNotFound {
		catalog = seedCatalog()
		if err := c.store.Set(ctx, store.KeyCatalog, catalog); err != nil {
			return nil, err
		}
		c.logger.Info("catalog seeded", zap.Int("products", len(catalog)))
		return catalog, nil
	}
	if err != nil {
		return nil, err
	}
	return catalog, nil
}
