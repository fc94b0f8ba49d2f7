package repository

import (
	"context"
	"encoding/json"

	"github.com/example/agrimart/pkg/config"
	"github.com/example/agrimart/pkg/store"
	"github.com/go-redis/redis/v8"
)

// RedisStore persists the marketplace namespace in Redis, one JSON blob per
// key. It is the default backend.
type RedisStore struct {
	client *redis.Client
	hub    *store.Hub
	config *config.RedisConfig
}

func NewRedisStore(cfg *config.RedisConfig, hub *store.Hub) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		hub:    hub,
		config: cfg,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (r *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	// No expiration: the namespace is the system of record, not a cache.
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return err
	}
	if r.hub != nil {
		r.hub.Publish(key)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	if r.hub != nil {
		r.hub.Publish(key)
	}
	return nil
}

func (r *RedisStore) Subscribe(key string, fn func()) func() {
	if r.hub == nil {
		return func() {}
	}
	return r.hub.Subscribe(key, fn)
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
