package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports"
)

// MockProjectRepository is a mock implementation of the ProjectRepository interface for testing
type MockProjectRepository struct {
	mu        sync.RWMutex
	projects  map[string]domain.Snapshot
	saveCalls []string
	loadErr   error
	saveErr   error
}

// NewMockProjectRepository creates a new mock project repository
func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{
		projects: make(map[string]domain.Snapshot),
	}
}

// Save records the snapshot under its path
func (m *MockProjectRepository) Save(ctx context.Context, path string, snap domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls = append(m.saveCalls, path)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.projects[path] = snap
	return nil
}

// Load retrieves a previously saved snapshot
func (m *MockProjectRepository) Load(ctx context.Context, path string) (domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.loadErr != nil {
		return domain.Snapshot{}, m.loadErr
	}
	snap, ok := m.projects[path]
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("project not found: %s", path)
	}
	return snap, nil
}

// Seed stores a snapshot without recording a save call
func (m *MockProjectRepository) Seed(path string, snap domain.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[path] = snap
}

// SetSaveErr makes subsequent Save calls fail
func (m *MockProjectRepository) SetSaveErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// SetLoadErr makes subsequent Load calls fail
func (m *MockProjectRepository) SetLoadErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// SaveCalls returns the paths passed to Save in order
func (m *MockProjectRepository) SaveCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	calls := make([]string, len(m.saveCalls))
	copy(calls, m.saveCalls)
	return calls
}

// --- MockThumbnailer ---

// MockThumbnailer is a mock implementation of the Thumbnailer interface
type MockThumbnailer struct {
	mu           sync.Mutex
	calls        []string
	refreshCalls []string
	shouldFail   bool
	failError    error
	outputPrefix string
}

// NewMockThumbnailer creates a new mock thumbnailer
func NewMockThumbnailer() *MockThumbnailer {
	return &MockThumbnailer{
		outputPrefix: "/fake/cache/",
	}
}

// GetOrCreate returns a deterministic fake cache path
func (m *MockThumbnailer) GetOrCreate(ctx context.Context, sourcePath string, tier ports.Tier) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, sourcePath)
	if m.shouldFail {
		if m.failError != nil {
			return "", m.failError
		}
		return "", fmt.Errorf("thumbnail failed for %s", sourcePath)
	}
	suffix := "thumb"
	if tier == ports.TierPreview {
		suffix = "preview"
	}
	return m.outputPrefix + suffix + "/" + sourcePath + ".jpg", nil
}

// ForceRefresh records the refresh request
func (m *MockThumbnailer) ForceRefresh(ctx context.Context, sourcePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCalls = append(m.refreshCalls, sourcePath)
	if m.shouldFail {
		if m.failError != nil {
			return m.failError
		}
		return fmt.Errorf("refresh failed for %s", sourcePath)
	}
	return nil
}

// SetShouldFail makes subsequent calls fail
func (m *MockThumbnailer) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

// GetCalls returns the source paths passed to GetOrCreate
func (m *MockThumbnailer) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// RefreshCalls returns the source paths passed to ForceRefresh
func (m *MockThumbnailer) RefreshCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.refreshCalls))
	copy(calls, m.refreshCalls)
	return calls
}

// --- MockGalleryRenderer ---

type MockGalleryRenderer struct {
	mu         sync.Mutex
	rendered   []domain.Snapshot
	included   [][]string
	shouldFail bool
	failError  error
}

func NewMockGalleryRenderer() *MockGalleryRenderer {
	return &MockGalleryRenderer{}
}

func (m *MockGalleryRenderer) RenderDocument(snap domain.Snapshot, included []string, themePath, outDir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldFail {
		if m.failError != nil {
			return m.failError
		}
		return fmt.Errorf("render failed")
	}
	m.rendered = append(m.rendered, snap)
	ids := make([]string, len(included))
	copy(ids, included)
	m.included = append(m.included, ids)
	return nil
}

func (m *MockGalleryRenderer) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

func (m *MockGalleryRenderer) RenderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rendered)
}

func (m *MockGalleryRenderer) LastIncluded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.included) == 0 {
		return nil
	}
	return m.included[len(m.included)-1]
}

// --- MockBookletRenderer ---

type MockBookletRenderer struct {
	mu         sync.Mutex
	available  bool
	calls      []string
	shouldFail bool
	failError  error
}

func NewMockBookletRenderer() *MockBookletRenderer {
	return &MockBookletRenderer{available: true}
}

func (m *MockBookletRenderer) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

func (m *MockBookletRenderer) SetAvailable(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = ok
}

func (m *MockBookletRenderer) Render(ctx context.Context, snap domain.Snapshot, outPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, outPath)
	if m.shouldFail {
		if m.failError != nil {
			return m.failError
		}
		return fmt.Errorf("booklet render failed")
	}
	return nil
}

func (m *MockBookletRenderer) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

func (m *MockBookletRenderer) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// --- MockSettingsRepository ---

type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings domain.Settings
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) Load() (domain.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

func (m *MockSettingsRepository) Save(s domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}

// --- MockRecentRepository ---

type MockRecentRepository struct {
	mu      sync.RWMutex
	entries []domain.RecentProject
}

func NewMockRecentRepository() *MockRecentRepository {
	return &MockRecentRepository{}
}

func (m *MockRecentRepository) List() ([]domain.RecentProject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]domain.RecentProject, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}

func (m *MockRecentRepository) Add(path, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.Path == path {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	entry := domain.RecentProject{Path: path, Title: title}
	m.entries = append([]domain.RecentProject{entry}, m.entries...)
	return nil
}

func (m *MockRecentRepository) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.Path == path {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}
