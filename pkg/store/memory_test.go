package store

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := s.Set(ctx, "k", record{Name: "seeds", Count: 3}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	var got record
	if err := s.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "seeds" || got.Count != 3 {
		t.Errorf("Round trip mismatch: %+v", got)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore(nil)

	var dest string
	if err := s.Get(context.Background(), "missing", &dest); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	var dest string
	if err := s.Get(ctx, "k", &dest); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent key is not an error.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestMemoryStore_SubscribeNotifiesOnSet(t *testing.T) {
	hub, err := NewHub(zap.NewNop())
	if err != nil {
		t.Fatalf("NewHub failed: %v", err)
	}
	defer hub.Shutdown()

	s := NewMemoryStore(hub)
	notified := make(chan struct{}, 4)
	cancel := s.Subscribe("k", func() { notified <- struct{}{} })
	defer cancel()

	if err := s.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("Subscriber not notified after Set")
	}
}

func TestMemoryStore_SubscribeOtherKeyNotNotified(t *testing.T) {
	hub, err := NewHub(zap.NewNop())
	if err != nil {
		t.Fatalf("NewHub failed: %v", err)
	}
	defer hub.Shutdown()

	s := NewMemoryStore(hub)
	notified := make(chan struct{}, 4)
	cancel := s.Subscribe("other", func() { notified <- struct{}{} })
	defer cancel()

	if err := s.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	select {
	case <-notified:
		t.Fatal("Subscriber for another key was notified")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestHub_CancelStopsNotifications(t *testing.T) {
	hub, err := NewHub(zap.NewNop())
	if err != nil {
		t.Fatalf("NewHub failed: %v", err)
	}
	defer hub.Shutdown()

	notified := make(chan struct{}, 4)
	cancel := hub.Subscribe("k", func() { notified <- struct{}{} })

	hub.Publish("k")
	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("Subscriber not notified")
	}

	cancel()
	// The unsubscribe message is processed before any later publish on the
	// same mailbox.
	hub.Publish("k")
	select {
	case <-notified:
		t.Fatal("Cancelled subscriber was notified")
	case <-time.After(200 * time.Millisecond):
	}
}
