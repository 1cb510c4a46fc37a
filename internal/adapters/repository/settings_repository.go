package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
	"github.com/cadmiumcmyk/curator/pkg/vault"
)

// SettingsRepository stores cross-project defaults as a flat JSON
// key-value file in the vault
type SettingsRepository struct {
	vault *vault.Vault
	mu    sync.Mutex
}

// NewSettingsRepository creates a settings repository backed by the vault
func NewSettingsRepository(v *vault.Vault) *SettingsRepository {
	return &SettingsRepository{vault: v}
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

// Load reads the settings file. A missing file yields zero-value
// settings, not an error.
func (r *SettingsRepository) Load() (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := viper.New()
	v.SetConfigFile(r.vault.SettingsPath())
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return domain.Settings{}, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	return domain.Settings{
		ArtistName: v.GetString("artist_name"),
		Role:       v.GetString("role"),
		Email:      v.GetString("email"),
		Bio:        v.GetString("bio"),
		SocialLink: v.GetString("social_link"),
		CVLink:     v.GetString("cv_link"),
		Theme:      v.GetString("theme"),
	}, nil
}

// Save writes all settings keys, replacing the previous file
func (r *SettingsRepository) Save(s domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := viper.New()
	v.SetConfigType("json")
	v.Set("artist_name", s.ArtistName)
	v.Set("role", s.Role)
	v.Set("email", s.Email)
	v.Set("bio", s.Bio)
	v.Set("social_link", s.SocialLink)
	v.Set("cv_link", s.CVLink)
	v.Set("theme", s.Theme)

	path := r.vault.SettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
