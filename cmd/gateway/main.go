package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/example/agrimart/gateway"
	"github.com/example/agrimart/pkg/ai"
	"github.com/example/agrimart/pkg/commerce"
	"github.com/example/agrimart/pkg/config"
	"github.com/example/agrimart/pkg/discovery"
	"github.com/example/agrimart/pkg/repository"
	"github.com/example/agrimart/pkg/store"
)

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting marketplace gateway",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver))

	// Notification hub
	hub, err := store.NewHub(logger)
	if err != nil {
		logger.Fatal("Failed to start notification hub", zap.Error(err))
	}
	defer hub.Shutdown()

	// Key-value store backend
	kv, closeStore, err := openStore(cfg, hub, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer closeStore()

	// Audit trail (optional)
	var audit commerce.Auditor
	trail, err := repository.NewAuditTrail(&cfg.MongoDB)
	if err != nil {
		logger.Warn("Failed to connect to MongoDB, continuing without audit trail", zap.Error(err))
		trail = nil
	} else {
		audit = trail
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			trail.Close(ctx)
		}()
	}

	core := commerce.New(kv, audit, logger.Named("commerce"))
	advisor := ai.NewClient(&cfg.AI, logger.Named("ai"))

	// Service registration (optional)
	registry, err := discovery.NewRegistry(&cfg.Etcd)
	if err != nil {
		logger.Warn("Failed to connect to etcd, continuing without registration", zap.Error(err))
		registry = nil
	}
	instance := &discovery.Instance{
		Name: cfg.Server.Name,
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}
	ctx := context.Background()
	if registry != nil {
		if err := registry.Register(ctx, instance); err != nil {
			logger.Warn("Failed to register instance", zap.Error(err))
		}
		defer registry.Close()
	}

	// Create gateway
	gw := gateway.NewGateway(cfg, logger, core, advisor)
	if trail != nil {
		gw.AttachAuditTrail(trail)
	}
	gw.SetupRoutes()

	// Start gateway in goroutine
	gwErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			gwErr <- err
		}
	}()

	logger.Info("Gateway started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-gwErr:
		logger.Fatal("Gateway error", zap.Error(err))
	}

	if registry != nil {
		if err := registry.Deregister(ctx, instance); err != nil {
			logger.Error("Failed to deregister instance", zap.Error(err))
		}
	}

	logger.Info("Gateway stopped")
}

// openStore builds the configured key-value backend.
func openStore(cfg *config.Config, hub *store.Hub, logger *zap.Logger) (store.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "redis", "":
		rs := repository.NewRedisStore(&cfg.Redis, hub)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rs.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		logger.Info("Redis connected successfully")
		return rs, func() { rs.Close() }, nil

	case "mysql":
		ms, err := repository.NewMySQLStore(&cfg.MySQL, hub)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("MySQL connected successfully")
		return ms, func() { ms.Close() }, nil

	case "memory":
		logger.Warn("Using in-memory store, data will not survive restarts")
		return store.NewMemoryStore(hub), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
