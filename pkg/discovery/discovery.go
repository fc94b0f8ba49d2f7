// Package discovery registers the gateway instance in etcd so reverse
// proxies and ops tooling can find it. Registration is best effort: the
// gateway runs fine without etcd.
package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/example/agrimart/pkg/config"
	clientv3 "go.etcd.io/etcd/client/v3"
)

type Registry struct {
	client *clientv3.Client
	config *config.EtcdConfig
}

type Instance struct {
	Name string
	Host string
	Port int
}

func NewRegistry(cfg *config.EtcdConfig) (*Registry, error) {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to etcd: %w", err)
	}

	return &Registry{
		client: cli,
		config: cfg,
	}, nil
}

// Register writes the instance under a 30s lease and keeps it alive until
// the context ends.
func (r *Registry) Register(ctx context.Context, instance *Instance) error {
	key := r.instanceKey(instance)
	value := fmt.Sprintf("%s:%d", instance.Host, instance.Port)

	lease, err := r.client.Grant(ctx, 30)
	if err != nil {
		return fmt.Errorf("failed to create lease: %w", err)
	}

	_, err = r.client.Put(ctx, key, value, clientv3.WithLease(lease.ID))
	if err != nil {
		return fmt.Errorf("failed to register instance: %w", err)
	}

	ch, kaerr := r.client.KeepAlive(ctx, lease.ID)
	if kaerr != nil {
		return fmt.Errorf("failed to keep alive: %w", kaerr)
	}

	go func() {
		for ka := range ch {
			_ = ka
		}
	}()

	return nil
}

func (r *Registry) Deregister(ctx context.Context, instance *Instance) error {
	_, err := r.client.Delete(ctx, r.instanceKey(instance))
	if err != nil {
		return fmt.Errorf("failed to deregister instance: %w", err)
	}
	return nil
}

func (r *Registry) instanceKey(instance *Instance) string {
	return fmt.Sprintf("%s%s/%s:%d", r.config.Prefix, instance.Name, instance.Host, instance.Port)
}

func (r *Registry) Close() error {
	return r.client.Close()
}
