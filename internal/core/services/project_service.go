package services

import (
	"context"
	"fmt"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
	"github.com/cadmiumcmyk/curator/internal/logger"
	"github.com/cadmiumcmyk/curator/pkg/vault"
)

// ProjectService owns the open project: the asset store, the single
// deletion undo slot, and the project file lifecycle. It runs on the
// coordinating goroutine; background work comes back to it through
// channels, never by calling mutating methods concurrently.
type ProjectService struct {
	store  *domain.Store
	undo   *domain.UndoBuffer
	repo   ports.ProjectRepository
	recent ports.RecentRepository
	thumbs ports.Thumbnailer
	vault  *vault.Vault
	log    logger.Logger

	path  string
	dirty bool
}

// NewProjectService creates a project service around an empty store
func NewProjectService(repo ports.ProjectRepository, recent ports.RecentRepository, thumbs ports.Thumbnailer, v *vault.Vault, log logger.Logger) *ProjectService {
	s := &ProjectService{
		store:  domain.NewStore(),
		undo:   &domain.UndoBuffer{},
		repo:   repo,
		recent: recent,
		thumbs: thumbs,
		vault:  v,
		log:    log,
	}
	s.store.Subscribe(func(domain.Event) { s.dirty = true })
	return s
}

// Store exposes the asset store for views and commands
func (s *ProjectService) Store() *domain.Store {
	return s.store
}

// Path returns the current project file path, empty for unsaved projects
func (s *ProjectService) Path() string {
	return s.path
}

// Dirty reports whether there are changes since the last save or load
func (s *ProjectService) Dirty() bool {
	return s.dirty
}

// New resets to an empty project seeded with the saved artist defaults
func (s *ProjectService) New(title string, settings domain.Settings) {
	s.store.Clear()
	s.store.Metadata = settings.SeedMetadata(title)
	s.undo = &domain.UndoBuffer{}
	s.path = ""
	s.dirty = false
}

// Open loads a project file, replacing the current contents wholesale.
// An unparseable file leaves the current project untouched.
func (s *ProjectService) Open(ctx context.Context, path string) error {
	snap, err := s.repo.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open project: %w", err)
	}

	s.store.Replace(snap.Metadata, snap.Assets)
	s.undo = &domain.UndoBuffer{}
	s.path = path
	s.dirty = false

	if err := s.recent.Add(path, snap.Metadata.PortfolioTitle); err != nil {
		s.log.Warn("failed to update recent projects", logger.Error(err))
	}
	return nil
}

// Save writes the project to path and makes it the current file
func (s *ProjectService) Save(ctx context.Context, path string) error {
	snap := domain.Snapshot{
		Metadata: s.store.Metadata,
		Assets:   s.store.Assets(),
	}
	if err := s.repo.Save(ctx, path, snap); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	s.path = path
	s.dirty = false

	if err := s.recent.Add(path, snap.Metadata.PortfolioTitle); err != nil {
		s.log.Warn("failed to update recent projects", logger.Error(err))
	}
	return nil
}

// SaveCurrent saves to the project's existing path
func (s *ProjectService) SaveCurrent(ctx context.Context) error {
	if s.path == "" {
		return fmt.Errorf("project has no file path, save it with an explicit path first")
	}
	return s.Save(ctx, s.path)
}

// Autosave writes a snapshot to the project path, or to the vault
// fallback for projects never saved. Recents and the current path are
// untouched; this is a safety net, not a user save.
func (s *ProjectService) Autosave(ctx context.Context) error {
	target := s.path
	if target == "" {
		target = s.vault.AutosavePath()
	}
	snap := domain.Snapshot{
		Metadata: s.store.Metadata,
		Assets:   s.store.Assets(),
	}
	if err := s.repo.Save(ctx, target, snap); err != nil {
		return fmt.Errorf("autosave failed: %w", err)
	}
	if target == s.path {
		s.dirty = false
	}
	return nil
}

// AddResult reports the outcome of an AddAssets call
type AddResult struct {
	Added    []*domain.Asset
	Rejected []string
}

// AddAssets appends one asset per supported image path, generating the
// interactive thumbnail as it goes. Unsupported paths are rejected,
// thumbnail failures are logged and leave the asset without one.
func (s *ProjectService) AddAssets(ctx context.Context, paths []string) AddResult {
	var res AddResult
	for _, path := range paths {
		if !domain.IsSupportedImage(path) {
			res.Rejected = append(res.Rejected, path)
			continue
		}

		asset := domain.NewAsset(path)
		thumb, err := s.thumbs.GetOrCreate(ctx, path, ports.TierThumb)
		if err != nil {
			s.log.Warn("thumbnail generation failed",
				logger.String("path", path), logger.Error(err))
		} else {
			asset.ThumbnailPath = thumb
		}

		s.store.Add(asset)
		res.Added = append(res.Added, asset)
	}
	return res
}

// Delete removes the assets with the given ids and arms the undo slot,
// replacing whatever the slot held. Returns the number removed.
func (s *ProjectService) Delete(ids []string) int {
	return s.undo.CaptureDelete(s.store, ids)
}

// Undo restores the last deletion at its original positions. Returns
// the number restored, zero when the slot is empty.
func (s *ProjectService) Undo() int {
	return s.undo.Restore(s.store)
}

// UpdateAsset applies an in-place edit to the asset with the given id
func (s *ProjectService) UpdateAsset(id string, edit func(*domain.Asset)) error {
	asset := s.store.FindByID(id)
	if asset == nil {
		return fmt.Errorf("asset not found: %s", id)
	}
	edit(asset)
	s.store.Touched(id)
	return nil
}

// MoveAsset reorders the asset with the given id to newIndex
func (s *ProjectService) MoveAsset(id string, newIndex int) error {
	i := s.store.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("asset not found: %s", id)
	}
	s.store.MoveTo(i, newIndex)
	return nil
}

// RefreshThumbnails regenerates every cache tier for an asset whose
// source pixels changed
func (s *ProjectService) RefreshThumbnails(ctx context.Context, id string) error {
	asset := s.store.FindByID(id)
	if asset == nil {
		return fmt.Errorf("asset not found: %s", id)
	}
	if err := s.thumbs.ForceRefresh(ctx, asset.SourcePath); err != nil {
		return fmt.Errorf("failed to refresh thumbnails: %w", err)
	}
	s.store.Touched(id)
	return nil
}
