package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/agrimart/pkg/config"
	"github.com/example/agrimart/pkg/store"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one namespace key persisted as a JSON blob row.
type KVEntry struct {
	Key   string `gorm:"primaryKey;type:varchar(191);column:entry_key"`
	Value string `gorm:"type:longtext"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// MySQLStore persists the marketplace namespace in MySQL through gorm.
// Same contract as the Redis backend, for deployments that already run a
// relational database.
type MySQLStore struct {
	db  *gorm.DB
	hub *store.Hub
}

func NewMySQLStore(cfg *config.MySQLConfig, hub *store.Hub) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	return &MySQLStore{db: db, hub: hub}, nil
}

func (m *MySQLStore) Get(ctx context.Context, key string, dest interface{}) error {
	var entry KVEntry
	err := m.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(entry.Value), dest)
}

func (m *MySQLStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := KVEntry{Key: key, Value: string(data)}
	err = m.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
	if err != nil {
		return err
	}
	if m.hub != nil {
		m.hub.Publish(key)
	}
	return nil
}

func (m *MySQLStore) Delete(ctx context.Context, key string) error {
	if err := m.db.WithContext(ctx).Delete(&KVEntry{}, "entry_key = ?", key).Error; err != nil {
		return err
	}
	if m.hub != nil {
		m.hub.Publish(key)
	}
	return nil
}

func (m *MySQLStore) Subscribe(key string, fn func()) func() {
	if m.hub == nil {
		return func() {}
	}
	return m.hub.Subscribe(key, fn)
}

func (m *MySQLStore) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
