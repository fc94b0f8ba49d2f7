package models

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusDispatched OrderStatus = "Dispatched"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDispatched, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the fulfilment state machine allows moving
// from s to next. Delivered and Cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusDispatched || next == OrderStatusCancelled
	case OrderStatusDispatched:
		return next == OrderStatusDelivered
	}
	return false
}

// Order is one purchase record. Customer fields are a snapshot of the
// buyer's profile at purchase time; CustomerMobile is the join key back to
// the profile for order-history filtering.
type Order struct {
	ID               string      `json:"id"`
	CustomerName     string      `json:"customerName"`
	CustomerEmail    string      `json:"customerEmail"`
	CustomerMobile   string      `json:"customerMobile"`
	Village          string      `json:"village"`
	City             string      `json:"city"`
	District         string      `json:"district"`
	State            string      `json:"state"`
	PermanentAddress string      `json:"permanentAddress"`
	Date             string      `json:"date"`
	Total            string      `json:"total"`
	Status           OrderStatus `json:"status"`
	Items            []string    `json:"items"`
}
