package commerce

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/example/agrimart/pkg/models"
	"github.com/example/agrimart/pkg/store"
	"go.uber.org/zap"
)

// PlaceOrder is the purchase transaction: it validates the buyer's profile
// and the product's stock, prepends the new order to the ledger and
// decrements stock as one committed unit. Either both writes land or the
// ledger write is rolled back.
func (c *Commerce) PlaceOrder(ctx context.Context, productID string) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var profile models.Profile
	if err := c.store.Get(ctx, store.KeyUserProfile, &profile); err != nil && err != store.ErrNotFound {
		return models.Order{}, err
	}
	if profile.Name == "" || profile.MobileNumber == "" {
		return models.Order{}, ErrMissingProfile
	}

	catalog, err := c.loadCatalog(ctx)
	if err != nil {
		return models.Order{}, err
	}
	var product *models.Product
	for i := range catalog {
		if catalog[i].ID == productID {
			product = &catalog[i]
			break
		}
	}
	if product == nil {
		return models.Order{}, ErrProductNotFound
	}
	if product.Stock <= 0 {
		return models.Order{}, ErrOutOfStock
	}

	orders, err := c.loadOrders(ctx)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:               newOrderID(orders),
		CustomerName:     profile.Name,
		CustomerEmail:    profile.Email,
		CustomerMobile:   profile.MobileNumber,
		Village:          profile.Village,
		City:             profile.City,
		District:         profile.District,
		State:            orDefault(profile.State, "Maharashtra"),
		PermanentAddress: profile.PermanentAddress,
		Date:             time.Now().Format("2006-01-02"),
		Total:            "₹" + product.Price,
		Status:           models.OrderStatusPending,
		Items:            []string{product.Name},
	}

	// Newest first.
	updated := append([]models.Order{order}, orders...)
	if err := c.store.Set(ctx, store.KeyOrders, updated); err != nil {
		return models.Order{}, err
	}

	decrementStock(catalog, product.ID, 1)
	if err := c.store.Set(ctx, store.KeyCatalog, catalog); err != nil {
		// Roll the ledger back so the order is not committed against stale
		// stock.
		if rbErr := c.store.Set(ctx, store.KeyOrders, orders); rbErr != nil {
			c.logger.Error("ledger rollback failed",
				zap.String("order_id", order.ID),
				zap.Error(rbErr))
		}
		return models.Order{}, err
	}

	c.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("product_id", product.ID),
		zap.String("mobile", profile.MobileNumber))
	c.recordAudit("place_order", order.ID, map[string]interface{}{
		"product_id": product.ID,
		"mobile":     profile.MobileNumber,
		"total":      order.Total,
	})
	return order, nil
}

// OrdersFor returns the ledger entries for one mobile number, newest first.
func (c *Commerce) OrdersFor(ctx context.Context, mobile string) ([]models.Order, error) {
	orders, err := c.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.CustomerMobile == mobile {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// AllOrders returns the full ledger, newest first.
func (c *Commerce) AllOrders(ctx context.Context) ([]models.Order, error) {
	return c.loadOrders(ctx)
}

// SetOrderStatus moves an order through the fulfilment state machine,
// rejecting transitions the table does not allow.
func (c *Commerce) SetOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !status.Valid() {
		return ErrInvalidTransition
	}

	orders, err := c.loadOrders(ctx)
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if !orders[i].Status.CanTransitionTo(status) {
			return ErrInvalidTransition
		}
		orders[i].Status = status
		if err := c.store.Set(ctx, store.KeyOrders, orders); err != nil {
			return err
		}
		c.recordAudit("set_order_status", id, map[string]interface{}{"status": string(status)})
		return nil
	}
	return ErrOrderNotFound
}

func (c *Commerce) loadOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := c.store.Get(ctx, store.KeyOrders, &orders)
	if err != nil && err != store.ErrNotFound {
		return nil, err
	}
	return orders, nil
}

// newOrderID generates a human-readable reference like ORD-04217, re-rolling
// on the rare collision with an existing ledger entry.
func newOrderID(orders []models.Order) string {
	for {
		id := fmt.Sprintf("ORD-%05d", rand.Intn(100000))
		taken := false
		for _, o := range orders {
			if o.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
