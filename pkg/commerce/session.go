package commerce

import (
	"context"
	"unicode"

	"github.com/example/agrimart/pkg/models"
	"github.com/example/agrimart/pkg/store"
	"go.uber.org/zap"
)

// validPassword requires at least 6 characters with at least one letter and
// one digit.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Register appends a credential record, seeds the role's profile slot and
// establishes a session. Mobile uniqueness is global: one number registers
// once, regardless of role.
func (c *Commerce) Register(ctx context.Context, mobile, password, name string, role models.Role) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !validPassword(password) {
		return ErrWeakPassword
	}

	creds, err := c.loadCredentials(ctx)
	if err != nil {
		return err
	}
	for _, cred := range creds {
		if cred.Mobile == mobile {
			return ErrAlreadyExists
		}
	}

	creds = append(creds, models.Credential{
		Mobile:   mobile,
		Password: password,
		Name:     name,
		Role:     role,
	})
	if err := c.store.Set(ctx, store.KeyCredentials, creds); err != nil {
		return err
	}

	profile := models.Profile{
		Name:         name,
		MobileNumber: mobile,
		State:        "Maharashtra",
	}
	if err := c.store.Set(ctx, profileKey(role), profile); err != nil {
		return err
	}

	if err := c.store.Set(ctx, store.KeySession, models.Session{Role: role}); err != nil {
		return err
	}

	c.logger.Info("user registered",
		zap.String("mobile", mobile),
		zap.String("role", string(role)))
	c.recordAudit("register", mobile, map[string]interface{}{"name": name, "role": string(role)})
	return nil
}

// Login matches the (mobile, password, role) triple exactly and persists the
// session on success.
func (c *Commerce) Login(ctx context.Context, mobile, password string, role models.Role) (models.Role, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	creds, err := c.loadCredentials(ctx)
	if err != nil {
		return "", err
	}
	for _, cred := range creds {
		if cred.Mobile == mobile && cred.Password == password && cred.Role == role {
			if err := c.store.Set(ctx, store.KeySession, models.Session{Role: cred.Role}); err != nil {
				return "", err
			}
			c.logger.Info("login", zap.String("mobile", mobile), zap.String("role", string(role)))
			return cred.Role, nil
		}
	}
	return "", ErrInvalidCredentials
}

// Logout clears the persisted session.
func (c *Commerce) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Delete(ctx, store.KeySession)
}

// Session returns the persisted session, or nil when nobody is signed in.
func (c *Commerce) Session(ctx context.Context) (*models.Session, error) {
	var session models.Session
	err := c.store.Get(ctx, store.KeySession, &session)
	if err == store.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Commerce) loadCredentials(ctx context.Context) ([]models.Credential, error) {
	var creds []models.Credential
	err := c.store.Get(ctx, store.KeyCredentials, &creds)
	if err != nil && err != store.ErrNotFound {
		return nil, err
	}
	return creds, nil
}
