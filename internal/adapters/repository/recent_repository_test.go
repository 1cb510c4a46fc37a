package repository

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cadmiumcmyk/curator/pkg/vault"
)

func testVault(t *testing.T) *vault.Vault {
	t.Helper()
	root := t.TempDir()
	return &vault.Vault{
		ConfigRoot: root,
		CacheRoot:  filepath.Join(root, "cache"),
		ThemesPath: filepath.Join(root, "themes"),
	}
}

func TestRecentRepositoryAddAndList(t *testing.T) {
	repo := NewRecentRepository(testVault(t))

	if err := repo.Add("/projects/alpha.json", "Alpha"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := repo.Add("/projects/beta.json", "Beta"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Beta" {
		t.Errorf("expected newest first, got %q", entries[0].Title)
	}
	if entries[0].Name != "beta" {
		t.Errorf("expected name without extension, got %q", entries[0].Name)
	}
	if entries[0].LastOpened == 0 {
		t.Error("expected last_opened to be set")
	}
}

func TestRecentRepositoryPromotesDuplicate(t *testing.T) {
	repo := NewRecentRepository(testVault(t))

	repo.Add("/projects/alpha.json", "Alpha")
	repo.Add("/projects/beta.json", "Beta")
	repo.Add("/projects/alpha.json", "Alpha v2")

	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected duplicate to be promoted, got %d entries", len(entries))
	}
	if entries[0].Title != "Alpha v2" {
		t.Errorf("expected promoted entry first with updated title, got %q", entries[0].Title)
	}
}

func TestRecentRepositoryCap(t *testing.T) {
	repo := NewRecentRepository(testVault(t))

	for i := 0; i < maxRecentProjects+3; i++ {
		path := fmt.Sprintf("/projects/p%02d.json", i)
		if err := repo.Add(path, fmt.Sprintf("Project %d", i)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != maxRecentProjects {
		t.Fatalf("expected cap of %d, got %d", maxRecentProjects, len(entries))
	}
	if entries[0].Title != fmt.Sprintf("Project %d", maxRecentProjects+2) {
		t.Errorf("expected newest entry kept, got %q", entries[0].Title)
	}
}

func TestRecentRepositoryRemove(t *testing.T) {
	repo := NewRecentRepository(testVault(t))

	repo.Add("/projects/alpha.json", "Alpha")
	repo.Add("/projects/beta.json", "Beta")

	if err := repo.Remove("/projects/alpha.json"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	entries, _ := repo.List()
	if len(entries) != 1 || entries[0].Title != "Beta" {
		t.Errorf("expected only Beta left, got %+v", entries)
	}

	// Removing a path that is not present is a no-op
	if err := repo.Remove("/projects/gone.json"); err != nil {
		t.Errorf("expected nil for absent path, got %v", err)
	}
}

func TestRecentRepositoryEmptyList(t *testing.T) {
	repo := NewRecentRepository(testVault(t))
	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty list, got %d entries", len(entries))
	}
}
