package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
	"github.com/cadmiumcmyk/curator/pkg/vault"
)

// maxRecentProjects caps the recent list at the newest entries
const maxRecentProjects = 10

// RecentRepository stores the recently opened project index in the vault
type RecentRepository struct {
	vault *vault.Vault
	mu    sync.Mutex
}

// NewRecentRepository creates a recent-projects repository backed by the vault
func NewRecentRepository(v *vault.Vault) *RecentRepository {
	return &RecentRepository{vault: v}
}

var _ ports.RecentRepository = (*RecentRepository)(nil)

// List returns entries newest first. Entries whose files have since
// been deleted are returned as-is so callers can show and prune them.
func (r *RecentRepository) List() ([]domain.RecentProject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

// Add inserts or promotes an entry to the front of the list
func (r *RecentRepository) Add(path, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	entries, err := r.read()
	if err != nil {
		// A corrupt index is not worth failing a project open over
		entries = nil
	}

	for i, e := range entries {
		if e.Path == abs {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}

	entry := domain.RecentProject{
		Path:       abs,
		Name:       strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)),
		Title:      title,
		LastOpened: time.Now().Unix(),
	}
	entries = append([]domain.RecentProject{entry}, entries...)
	if len(entries) > maxRecentProjects {
		entries = entries[:maxRecentProjects]
	}

	return r.write(entries)
}

// Remove drops the entry for path if present
func (r *RecentRepository) Remove(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	entries, err := r.read()
	if err != nil {
		return err
	}

	for i, e := range entries {
		if e.Path == abs {
			entries = append(entries[:i], entries[i+1:]...)
			return r.write(entries)
		}
	}
	return nil
}

func (r *RecentRepository) read() ([]domain.RecentProject, error) {
	data, err := os.ReadFile(r.vault.RecentPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read recent projects: %w", err)
	}

	var entries []domain.RecentProject
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse recent projects: %w", err)
	}
	return entries, nil
}

func (r *RecentRepository) write(entries []domain.RecentProject) error {
	if entries == nil {
		entries = []domain.RecentProject{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode recent projects: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.vault.RecentPath()), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(r.vault.RecentPath(), data, 0644)
}
