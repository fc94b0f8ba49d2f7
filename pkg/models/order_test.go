package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusDispatched, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusDispatched, OrderStatusDelivered, true},
		{OrderStatusDispatched, OrderStatusCancelled, false},
		{OrderStatusDispatched, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusDispatched, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusDispatched, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, expected %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	if !OrderStatusPending.Valid() {
		t.Error("Pending should be valid")
	}
	if OrderStatus("Shipped").Valid() {
		t.Error("Shipped is not a known status")
	}
}
