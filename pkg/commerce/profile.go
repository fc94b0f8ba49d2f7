package commerce

import (
	"context"

	"github.com/example/agrimart/pkg/models"
	"github.com/example/agrimart/pkg/store"
	"go.uber.org/zap"
)

func profileKey(role models.Role) string {
	if role == models.RoleAdmin {
		return store.KeyAdminProfile
	}
	return store.KeyUserProfile
}

// Profile returns the persisted profile for the role slot, or a zero-valued
// default if none exists.
func (c *Commerce) Profile(ctx context.Context, role models.Role) (models.Profile, error) {
	var profile models.Profile
	err := c.store.Get(ctx, profileKey(role), &profile)
	if err != nil && err != store.ErrNotFound {
		return models.Profile{}, err
	}
	return profile, nil
}

// SaveProfile replaces the role slot wholesale, recomputing the derived
// location display string before persisting.
func (c *Commerce) SaveProfile(ctx context.Context, role models.Role, profile models.Profile) (models.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	profile.DeriveLocation()
	if err := c.store.Set(ctx, profileKey(role), profile); err != nil {
		return models.Profile{}, err
	}

	c.logger.Info("profile saved",
		zap.String("role", string(role)),
		zap.String("mobile", profile.MobileNumber))
	c.recordAudit("save_profile", profile.MobileNumber, map[string]interface{}{"role": string(role)})
	return profile, nil
}
