package memstore

import (
	"context"

	"github.com/bounceboom/training-portal/internal/models"
)

// DefaultSettings возвращает настройки платформы по умолчанию.
func DefaultSettings() models.Settings {
	return models.Settings{
		PlatformName:              "Bounce Boom Training",
		AdminEmail:                "admin@bounceboom.com",
		SupportEmail:              "support@bounceboom.com",
		TempAccessDuration:        7,
		VideoAccessLimit:          5,
		AutoExpireEnabled:         true,
		EmailNotificationsEnabled: true,
		MaintenanceMode:           false,
		AllowSelfRegistration:     false,
		DefaultRole:               models.RoleEmployee,
	}
}

// GetSettings возвращает текущие настройки платформы.
func (s *Store) GetSettings(ctx context.Context) (models.Settings, error) {
	const op = "memstore.GetSettings"
	if err := ctxErr(ctx, op); err != nil {
		return models.Settings{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// UpdateSettings заменяет настройки платформы.
func (s *Store) UpdateSettings(ctx context.Context, settings models.Settings) error {
	const op = "memstore.UpdateSettings"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}

// ResetSettings возвращает настройки к значениям по умолчанию.
func (s *Store) ResetSettings(ctx context.Context) (models.Settings, error) {
	const op = "memstore.ResetSettings"
	if err := ctxErr(ctx, op); err != nil {
		return models.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = DefaultSettings()
	return s.settings, nil
}
