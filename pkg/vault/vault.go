package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// Vault represents the managed application directories for curator:
// a config root for settings, recent projects and themes, and a cache
// root for generated thumbnails.
type Vault struct {
	ConfigRoot string
	CacheRoot  string
	ThemesPath string
}

// New creates a new Vault instance with XDG-compliant paths
func New() (*Vault, error) {
	configRoot, err := getConfigRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config root: %w", err)
	}
	cacheRoot, err := getCacheRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to determine cache root: %w", err)
	}

	return &Vault{
		ConfigRoot: configRoot,
		CacheRoot:  cacheRoot,
		ThemesPath: filepath.Join(configRoot, "themes"),
	}, nil
}

// getConfigRoot returns the configuration directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getConfigRoot() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "curator"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "curator"), nil
	}

	return filepath.Join(homeDir, ".config", "curator"), nil
}

// getCacheRoot returns the thumbnail cache directory path
func getCacheRoot() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "curator"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return filepath.Join(localAppData, "curator", "cache"), nil
	}

	return filepath.Join(homeDir, ".cache", "curator"), nil
}

// Initialize creates the vault directory structure if it doesn't exist
func (v *Vault) Initialize() error {
	directories := []string{
		v.ConfigRoot,
		v.ThemesPath,
		v.CacheRoot,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the vault has been initialized
func (v *Vault) Exists() bool {
	info, err := os.Stat(v.ConfigRoot)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ConfigPath returns the path to the tool configuration file
func (v *Vault) ConfigPath() string {
	return filepath.Join(v.ConfigRoot, "config.yaml")
}

// SettingsPath returns the path to the cross-project settings file
func (v *Vault) SettingsPath() string {
	return filepath.Join(v.ConfigRoot, "settings.json")
}

// RecentPath returns the path to the recent projects index
func (v *Vault) RecentPath() string {
	return filepath.Join(v.ConfigRoot, "recent_projects.json")
}

// AutosavePath returns the fallback location for autosave snapshots
// of projects that have no file path yet
func (v *Vault) AutosavePath() string {
	return filepath.Join(v.ConfigRoot, "autosave.json")
}

// GetThemePath returns the full path for a theme file
func (v *Vault) GetThemePath(filename string) string {
	return filepath.Join(v.ThemesPath, filename)
}

// CleanCache removes all files in the thumbnail cache directory
func (v *Vault) CleanCache() error {
	entries, err := os.ReadDir(v.CacheRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(v.CacheRoot, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}
