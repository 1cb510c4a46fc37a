package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
)

// ProjectRepository persists projects as indented JSON documents
type ProjectRepository struct {
	mu sync.Mutex
}

// NewProjectRepository creates a new JSON project repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Ensure it implements the interface
var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// projectFile is the on-disk shape of a project document
type projectFile struct {
	Metadata domain.Metadata `json:"metadata"`
	Assets   []*domain.Asset `json:"assets"`
}

// Save writes the full snapshot to path, replacing any previous content
func (r *ProjectRepository) Save(ctx context.Context, path string, snap domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := projectFile{
		Metadata: snap.Metadata,
		Assets:   snap.Assets,
	}
	if doc.Assets == nil {
		doc.Assets = []*domain.Asset{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	return nil
}

// Load reads a project document from path. Files written before
// metadata existed hold a bare asset array, and are read with default
// metadata. A file that parses as neither shape is a hard error.
func (r *ProjectRepository) Load(ctx context.Context, path string) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to read project file: %w", err)
	}

	// Pre-seeding the defaults means fields absent from the document
	// keep them, while fields written as "" stay empty
	doc := projectFile{Metadata: domain.DefaultMetadata()}
	if err := json.Unmarshal(data, &doc); err == nil {
		if doc.Assets == nil {
			doc.Assets = []*domain.Asset{}
		}
		normalizeAssets(doc.Assets)
		return domain.Snapshot{Metadata: doc.Metadata, Assets: doc.Assets}, nil
	}

	// Legacy shape: a bare array of assets
	var assets []*domain.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return domain.Snapshot{}, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}
	if assets == nil {
		assets = []*domain.Asset{}
	}
	normalizeAssets(assets)

	return domain.Snapshot{
		Metadata: domain.DefaultMetadata(),
		Assets:   assets,
	}, nil
}

// normalizeAssets fills the defaults a hand-edited or pre-id record
// may lack: an id, a title, a non-nil tag list
func normalizeAssets(assets []*domain.Asset) {
	for _, a := range assets {
		if a.ID == "" {
			a.ID = domain.NewID()
		}
		if a.Title == "" {
			a.Title = "Untitled"
		}
		if a.Tags == nil {
			a.Tags = []string{}
		}
	}
}
