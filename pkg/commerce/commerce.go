// Package commerce implements the marketplace core: session/identity,
// catalog, order ledger and profile operations over the persisted key-value
// store. Mutations are serialized by a single lock, so every operation reads
// and commits a consistent snapshot.
package commerce

import (
	"context"
	"sync"

	"github.com/example/agrimart/pkg/models"
	"github.com/example/agrimart/pkg/store"
	"go.uber.org/zap"
)

// Auditor records committed mutations. The Mongo repository implements it;
// a nil Auditor disables the trail.
type Auditor interface {
	Record(ctx context.Context, action, entityID string, data map[string]interface{})
}

type Commerce struct {
	mu     sync.Mutex
	store  store.Store
	audit  Auditor
	logger *zap.Logger
}

func New(s store.Store, audit Auditor, logger *zap.Logger) *Commerce {
	return &Commerce{
		store:  s,
		audit:  audit,
		logger: logger,
	}
}

// recordAudit fires the audit write off the commit path.
func (c *Commerce) recordAudit(action, entityID string, data map[string]interface{}) {
	if c.audit == nil {
		return
	}
	go c.audit.Record(context.Background(), action, entityID, data)
}

// Language returns the persisted UI language preference, defaulting to
// English when none has been chosen.
func (c *Commerce) Language(ctx context.Context) (models.Language, error) {
	var lang models.Language
	err := c.store.Get(ctx, store.KeyLanguage, &lang)
	if err == store.ErrNotFound {
		return models.LanguageEnglish, nil
	}
	if err != nil {
		return "", err
	}
	if !lang.Valid() {
		return models.LanguageEnglish, nil
	}
	return lang, nil
}

// SetLanguage persists the UI language preference.
func (c *Commerce) SetLanguage(ctx context.Context, lang models.Language) error {
	if !lang.Valid() {
		return ErrUnsupportedLanguage
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Set(ctx, store.KeyLanguage, lang)
}
