package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports/mocks"
	"github.com/cadmiumcmyk/curator/internal/logger"
	"github.com/cadmiumcmyk/curator/pkg/vault"
)

type projectFixture struct {
	svc    *ProjectService
	repo   *mocks.MockProjectRepository
	recent *mocks.MockRecentRepository
	thumbs *mocks.MockThumbnailer
	vault  *vault.Vault
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	root := t.TempDir()
	v := &vault.Vault{
		ConfigRoot: root,
		CacheRoot:  filepath.Join(root, "cache"),
		ThemesPath: filepath.Join(root, "themes"),
	}
	repo := mocks.NewMockProjectRepository()
	recent := mocks.NewMockRecentRepository()
	thumbs := mocks.NewMockThumbnailer()
	return &projectFixture{
		svc:    NewProjectService(repo, recent, thumbs, v, logger.Nop()),
		repo:   repo,
		recent: recent,
		thumbs: thumbs,
		vault:  v,
	}
}

func TestAddAssetsSupportedAndRejected(t *testing.T) {
	f := newProjectFixture(t)

	res := f.svc.AddAssets(context.Background(), []string{
		"/art/a.png", "/art/b.txt", "/art/c.JPG",
	})

	if len(res.Added) != 2 {
		t.Fatalf("expected 2 added, got %d", len(res.Added))
	}
	if len(res.Rejected) != 1 || res.Rejected[0] != "/art/b.txt" {
		t.Errorf("expected b.txt rejected, got %v", res.Rejected)
	}
	if f.svc.Store().Len() != 2 {
		t.Errorf("expected 2 assets in store, got %d", f.svc.Store().Len())
	}
	if res.Added[0].ThumbnailPath == "" {
		t.Error("expected thumbnail path set on added asset")
	}
	if !f.svc.Dirty() {
		t.Error("expected project dirty after add")
	}
}

func TestAddAssetsThumbnailFailureIsNotFatal(t *testing.T) {
	f := newProjectFixture(t)
	f.thumbs.SetShouldFail(true, fmt.Errorf("decode error"))

	res := f.svc.AddAssets(context.Background(), []string{"/art/a.png"})

	if len(res.Added) != 1 {
		t.Fatalf("expected asset added despite thumbnail failure, got %d", len(res.Added))
	}
	if res.Added[0].ThumbnailPath != "" {
		t.Error("expected empty thumbnail path on failure")
	}
}

func TestSaveAndOpenRoundTrip(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	f.svc.AddAssets(ctx, []string{"/art/a.png", "/art/b.png"})
	f.svc.Store().Metadata.PortfolioTitle = "Spring Reel"

	if err := f.svc.Save(ctx, "/projects/spring.json"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if f.svc.Dirty() {
		t.Error("expected clean after save")
	}
	if f.svc.Path() != "/projects/spring.json" {
		t.Errorf("expected path set, got %q", f.svc.Path())
	}

	entries, _ := f.recent.List()
	if len(entries) != 1 || entries[0].Title != "Spring Reel" {
		t.Errorf("expected recent entry with project title, got %+v", entries)
	}

	// Mutate, then reopen: contents replaced wholesale
	f.svc.AddAssets(ctx, []string{"/art/c.png"})
	if err := f.svc.Open(ctx, "/projects/spring.json"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if f.svc.Store().Len() != 2 {
		t.Errorf("expected reopened project with 2 assets, got %d", f.svc.Store().Len())
	}
	if f.svc.Dirty() {
		t.Error("expected clean after open")
	}
}

func TestOpenFailureLeavesProjectUntouched(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	f.svc.AddAssets(ctx, []string{"/art/a.png"})
	f.repo.SetLoadErr(fmt.Errorf("corrupt file"))

	if err := f.svc.Open(ctx, "/projects/bad.json"); err == nil {
		t.Fatal("expected error from failed open")
	}
	if f.svc.Store().Len() != 1 {
		t.Error("expected current project untouched after failed open")
	}
}

func TestSaveCurrentRequiresPath(t *testing.T) {
	f := newProjectFixture(t)
	if err := f.svc.SaveCurrent(context.Background()); err == nil {
		t.Error("expected error for unsaved project")
	}
}

func TestAutosaveFallsBackToVault(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	f.svc.AddAssets(ctx, []string{"/art/a.png"})
	if err := f.svc.Autosave(ctx); err != nil {
		t.Fatalf("Autosave failed: %v", err)
	}

	calls := f.repo.SaveCalls()
	if len(calls) != 1 || calls[0] != f.vault.AutosavePath() {
		t.Errorf("expected autosave to vault fallback, got %v", calls)
	}
	if !f.svc.Dirty() {
		t.Error("expected fallback autosave to leave project dirty")
	}
	if f.svc.Path() != "" {
		t.Error("expected autosave not to adopt the fallback path")
	}

	entries, _ := f.recent.List()
	if len(entries) != 0 {
		t.Error("expected autosave not to touch recents")
	}
}

func TestAutosaveUsesProjectPath(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	f.svc.Save(ctx, "/projects/p.json")
	f.svc.AddAssets(ctx, []string{"/art/a.png"})

	if err := f.svc.Autosave(ctx); err != nil {
		t.Fatalf("Autosave failed: %v", err)
	}
	calls := f.repo.SaveCalls()
	if calls[len(calls)-1] != "/projects/p.json" {
		t.Errorf("expected autosave to project path, got %v", calls)
	}
	if f.svc.Dirty() {
		t.Error("expected clean after autosave to the project path")
	}
}

func TestDeleteThenUndo(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	res := f.svc.AddAssets(ctx, []string{"/art/a.png", "/art/b.png", "/art/c.png"})
	ids := []string{res.Added[0].ID, res.Added[2].ID}

	if n := f.svc.Delete(ids); n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}
	if f.svc.Store().Len() != 1 {
		t.Fatalf("expected 1 left, got %d", f.svc.Store().Len())
	}

	if n := f.svc.Undo(); n != 2 {
		t.Fatalf("expected 2 restored, got %d", n)
	}
	if f.svc.Store().At(0).ID != res.Added[0].ID || f.svc.Store().At(2).ID != res.Added[2].ID {
		t.Error("expected assets restored at original positions")
	}

	if n := f.svc.Undo(); n != 0 {
		t.Errorf("expected empty undo slot after restore, got %d", n)
	}
}

func TestNewResetsAndSeedsMetadata(t *testing.T) {
	f := newProjectFixture(t)
	ctx := context.Background()

	res := f.svc.AddAssets(ctx, []string{"/art/a.png"})
	f.svc.Delete([]string{res.Added[0].ID})
	f.svc.New("Winter Reel", domain.Settings{ArtistName: "R. Vance"})

	if f.svc.Store().Len() != 0 {
		t.Error("expected empty store after New")
	}
	if got := f.svc.Store().Metadata.ArtistName; got != "R. Vance" {
		t.Errorf("expected seeded artist name, got %q", got)
	}
	if got := f.svc.Store().Metadata.PortfolioTitle; got != "Winter Reel" {
		t.Errorf("expected seeded title, got %q", got)
	}
	if f.svc.Undo() != 0 {
		t.Error("expected undo slot cleared by New")
	}
	if f.svc.Dirty() {
		t.Error("expected fresh project clean")
	}
}

func TestUpdateAsset(t *testing.T) {
	f := newProjectFixture(t)
	res := f.svc.AddAssets(context.Background(), []string{"/art/a.png"})

	err := f.svc.UpdateAsset(res.Added[0].ID, func(a *domain.Asset) {
		a.Title = "Renamed"
		a.Year = "2023"
	})
	if err != nil {
		t.Fatalf("UpdateAsset failed: %v", err)
	}
	if f.svc.Store().At(0).Title != "Renamed" {
		t.Error("expected edit applied")
	}

	if err := f.svc.UpdateAsset("ghost", func(*domain.Asset) {}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestMoveAsset(t *testing.T) {
	f := newProjectFixture(t)
	res := f.svc.AddAssets(context.Background(), []string{"/art/a.png", "/art/b.png", "/art/c.png"})

	if err := f.svc.MoveAsset(res.Added[0].ID, 2); err != nil {
		t.Fatalf("MoveAsset failed: %v", err)
	}
	if f.svc.Store().At(2).ID != res.Added[0].ID {
		t.Error("expected asset moved to index 2")
	}

	if err := f.svc.MoveAsset("ghost", 0); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestRefreshThumbnails(t *testing.T) {
	f := newProjectFixture(t)
	res := f.svc.AddAssets(context.Background(), []string{"/art/a.png"})

	if err := f.svc.RefreshThumbnails(context.Background(), res.Added[0].ID); err != nil {
		t.Fatalf("RefreshThumbnails failed: %v", err)
	}
	calls := f.thumbs.RefreshCalls()
	if len(calls) != 1 || calls[0] != "/art/a.png" {
		t.Errorf("expected refresh for source path, got %v", calls)
	}
}
