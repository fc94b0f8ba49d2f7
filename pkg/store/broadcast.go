package store

import (
	"sync/atomic"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// Hub fans change notifications out to subscriber callbacks. A single actor
// owns the subscriber table, so callbacks for one key run in publish order
// and strictly after the mutation that triggered them.
type Hub struct {
	system *actor.ActorSystem
	pid    *actor.PID
	nextID int64
}

type hubSubscribe struct {
	key string
	id  int64
	fn  func()
}

type hubUnsubscribe struct {
	key string
	id  int64
}

type hubChanged struct {
	key string
}

type hubActor struct {
	logger      *zap.Logger
	subscribers map[string]map[int64]func()
}

func (a *hubActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		a.subscribers = make(map[string]map[int64]func())
		a.logger.Info("notification hub started")

	case *hubSubscribe:
		if a.subscribers[msg.key] == nil {
			a.subscribers[msg.key] = make(map[int64]func())
		}
		a.subscribers[msg.key][msg.id] = msg.fn
		ctx.Respond(msg.id)

	case *hubUnsubscribe:
		delete(a.subscribers[msg.key], msg.id)

	case *hubChanged:
		for _, fn := range a.subscribers[msg.key] {
			fn()
		}
	}
}

// NewHub spawns the notification actor on a fresh actor system.
func NewHub(logger *zap.Logger) (*Hub, error) {
	system := actor.NewActorSystem()
	props := actor.PropsFromProducer(func() actor.Actor {
		return &hubActor{logger: logger.Named("store-hub")}
	})
	pid, err := system.Root.SpawnNamed(props, "store-hub")
	if err != nil {
		return nil, err
	}
	return &Hub{system: system, pid: pid}, nil
}

// Publish notifies subscribers of key that the committed value changed.
func (h *Hub) Publish(key string) {
	h.system.Root.Send(h.pid, &hubChanged{key: key})
}

// Subscribe registers fn for key and returns a cancel func. The registration
// is acknowledged before Subscribe returns, so a Publish issued afterwards is
// guaranteed to reach fn.
func (h *Hub) Subscribe(key string, fn func()) func() {
	id := atomic.AddInt64(&h.nextID, 1)
	future := h.system.Root.RequestFuture(h.pid, &hubSubscribe{key: key, id: id, fn: fn}, 5*time.Second)
	_, _ = future.Result()
	return func() {
		h.system.Root.Send(h.pid, &hubUnsubscribe{key: key, id: id})
	}
}

// Shutdown stops the actor system. Pending notifications are dropped.
func (h *Hub) Shutdown() {
	h.system.Shutdown()
}
