package ports

import (
	"context"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
)

// Tier selects one of the two independent thumbnail size classes
type Tier int

const (
	// TierThumb is the interactive thumbnail bound (600x600)
	TierThumb Tier = iota
	// TierPreview is the export-quality bound (1920x1920)
	TierPreview
)

// ProjectRepository defines the port for project persistence
type ProjectRepository interface {
	// Save writes a snapshot as an indented JSON document
	Save(ctx context.Context, path string, snap domain.Snapshot) error

	// Load reads a project file, accepting both the current object
	// shape and the legacy bare-array shape
	Load(ctx context.Context, path string) (domain.Snapshot, error)
}

// Thumbnailer defines the port for the content-addressed thumbnail cache
type Thumbnailer interface {
	// GetOrCreate returns the cache location for a source image,
	// generating it on first request. Decode failures surface as an
	// error the caller treats as "no thumbnail available".
	GetOrCreate(ctx context.Context, sourcePath string, tier Tier) (string, error)

	// ForceRefresh regenerates every tier for a source path,
	// bypassing the existence check. Used after rotation.
	ForceRefresh(ctx context.Context, sourcePath string) error
}

// GalleryRenderer writes the static HTML gallery document. Image
// normalization happens in the export service beforehand; included
// lists the ids whose images were processed successfully.
type GalleryRenderer interface {
	RenderDocument(snap domain.Snapshot, included []string, themePath, outDir string) error
}

// BookletRenderer defines the port for the paginated PDF export.
// The backend is an optional capability: callers must consult
// Available before invoking Render.
type BookletRenderer interface {
	Available() bool
	Render(ctx context.Context, snap domain.Snapshot, outPath string) error
}

// SettingsRepository persists cross-project defaults
type SettingsRepository interface {
	Load() (domain.Settings, error)
	Save(domain.Settings) error
}

// RecentRepository maintains the most-recent-first project index
type RecentRepository interface {
	// List returns entries newest first, including entries whose
	// files no longer exist; pruning is the caller's decision
	List() ([]domain.RecentProject, error)

	// Add moves or inserts an entry at the front, capped at the
	// repository's maximum
	Add(path, title string) error

	// Remove deletes the entry for a path if present
	Remove(path string) error
}
