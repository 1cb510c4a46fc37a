package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cadmiumcmyk/curator/internal/core/domain"
	"github.com/cadmiumcmyk/curator/internal/core/ports/mocks"
	"github.com/cadmiumcmyk/curator/internal/logger"
)

// stubNormalizer records Normalize calls and writes a marker file
type stubNormalizer struct {
	mu       sync.Mutex
	calls    []string
	failFor  map[string]bool
	contents string
}

func newStubNormalizer() *stubNormalizer {
	return &stubNormalizer{failFor: map[string]bool{}, contents: "jpeg"}
}

func (n *stubNormalizer) Normalize(sourcePath, destPath string, maxPx int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, sourcePath)
	if n.failFor[sourcePath] {
		return fmt.Errorf("decode failed: %s", sourcePath)
	}
	return os.WriteFile(destPath, []byte(n.contents), 0644)
}

func (n *stubNormalizer) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func exportSnapshot(t *testing.T, dir string, names ...string) domain.Snapshot {
	t.Helper()
	snap := domain.Snapshot{Metadata: domain.DefaultMetadata()}
	for _, name := range names {
		src := filepath.Join(dir, name)
		if err := os.WriteFile(src, []byte("img"), 0644); err != nil {
			t.Fatal(err)
		}
		a := domain.NewAsset(src)
		snap.Assets = append(snap.Assets, a)
	}
	return snap
}

func TestExportHTMLProcessesAllAssets(t *testing.T) {
	dir := t.TempDir()
	snap := exportSnapshot(t, dir, "a.png", "b.png", "c.png")
	gallery := mocks.NewMockGalleryRenderer()
	norm := newStubNormalizer()
	svc := NewExportService(gallery, mocks.NewMockBookletRenderer(), norm, logger.Nop())

	outDir := filepath.Join(dir, "out")
	summary, err := svc.ExportHTML(context.Background(), snap, "/theme.html", outDir, 2, nil)
	if err != nil {
		t.Fatalf("ExportHTML failed: %v", err)
	}

	if summary.Exported != 3 || summary.Failed != 0 || summary.Skipped != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if gallery.RenderCount() != 1 {
		t.Error("expected one document render")
	}
	included := gallery.LastIncluded()
	if len(included) != 3 {
		t.Fatalf("expected 3 included ids, got %d", len(included))
	}
	// Document order follows the snapshot regardless of worker timing
	for i, id := range included {
		if id != snap.Assets[i].ID {
			t.Errorf("included[%d] = %q, want %q", i, id, snap.Assets[i].ID)
		}
	}
	for _, a := range snap.Assets {
		if _, err := os.Stat(filepath.Join(outDir, "images", a.ID+".jpg")); err != nil {
			t.Errorf("expected published image for %s: %v", a.Title, err)
		}
	}
}

func TestExportHTMLSkipsMissingSources(t *testing.T) {
	dir := t.TempDir()
	snap := exportSnapshot(t, dir, "a.png")
	snap.Assets = append(snap.Assets, domain.NewAsset(filepath.Join(dir, "ghost.png")))

	gallery := mocks.NewMockGalleryRenderer()
	svc := NewExportService(gallery, mocks.NewMockBookletRenderer(), newStubNormalizer(), logger.Nop())

	summary, err := svc.ExportHTML(context.Background(), snap, "/theme.html", filepath.Join(dir, "out"), 2, nil)
	if err != nil {
		t.Fatalf("ExportHTML failed: %v", err)
	}
	if summary.Skipped != 1 || summary.Exported != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if len(gallery.LastIncluded()) != 1 {
		t.Error("expected missing asset excluded from document")
	}
}

func TestExportHTMLFailureExcludesAssetOnly(t *testing.T) {
	dir := t.TempDir()
	snap := exportSnapshot(t, dir, "a.png", "b.png")
	norm := newStubNormalizer()
	norm.failFor[snap.Assets[0].SourcePath] = true

	gallery := mocks.NewMockGalleryRenderer()
	svc := NewExportService(gallery, mocks.NewMockBookletRenderer(), norm, logger.Nop())

	summary, err := svc.ExportHTML(context.Background(), snap, "/theme.html", filepath.Join(dir, "out"), 1, nil)
	if err != nil {
		t.Fatalf("expected export to continue past failure: %v", err)
	}
	if summary.Failed != 1 || summary.Exported != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	included := gallery.LastIncluded()
	if len(included) != 1 || included[0] != snap.Assets[1].ID {
		t.Errorf("expected only the healthy asset included, got %v", included)
	}
}

func TestExportHTMLSkipsUpToDateImages(t *testing.T) {
	dir := t.TempDir()
	snap := exportSnapshot(t, dir, "a.png")
	norm := newStubNormalizer()
	gallery := mocks.NewMockGalleryRenderer()
	svc := NewExportService(gallery, mocks.NewMockBookletRenderer(), norm, logger.Nop())
	outDir := filepath.Join(dir, "out")
	ctx := context.Background()

	if _, err := svc.ExportHTML(ctx, snap, "/theme.html", outDir, 1, nil); err != nil {
		t.Fatal(err)
	}
	if norm.callCount() != 1 {
		t.Fatalf("expected 1 normalize call, got %d", norm.callCount())
	}

	// Second run: published image is newer than the source, no reprocess
	summary, err := svc.ExportHTML(ctx, snap, "/theme.html", outDir, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if norm.callCount() != 1 {
		t.Errorf("expected up-to-date image skipped, got %d calls", norm.callCount())
	}
	if summary.Skipped != 1 || summary.Exported != 0 {
		t.Errorf("expected up-to-date image counted as skipped, got %+v", summary)
	}
	if len(gallery.LastIncluded()) != 1 {
		t.Errorf("expected up-to-date image still in the document, got %v", gallery.LastIncluded())
	}

	// Touch the source into the future: reprocess
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(snap.Assets[0].SourcePath, future, future); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ExportHTML(ctx, snap, "/theme.html", outDir, 1, nil); err != nil {
		t.Fatal(err)
	}
	if norm.callCount() != 2 {
		t.Errorf("expected stale image reprocessed, got %d calls", norm.callCount())
	}
}

func TestExportHTMLProgressReporting(t *testing.T) {
	dir := t.TempDir()
	snap := exportSnapshot(t, dir, "a.png", "b.png")
	svc := NewExportService(mocks.NewMockGalleryRenderer(), mocks.NewMockBookletRenderer(), newStubNormalizer(), logger.Nop())

	progress := make(chan ExportProgress, 8)
	done := make(chan []ExportProgress)
	go func() {
		var got []ExportProgress
		for p := range progress {
			got = append(got, p)
		}
		done <- got
	}()

	if _, err := svc.ExportHTML(context.Background(), snap, "/theme.html", filepath.Join(dir, "out"), 2, progress); err != nil {
		t.Fatal(err)
	}

	got := <-done
	if len(got) != 2 {
		t.Fatalf("expected 2 progress events, got %d", len(got))
	}
	if got[len(got)-1].Current != 2 || got[len(got)-1].Total != 2 {
		t.Errorf("expected final progress 2/2, got %+v", got[len(got)-1])
	}
}

func TestExportPDFChecksAvailability(t *testing.T) {
	booklet := mocks.NewMockBookletRenderer()
	booklet.SetAvailable(false)
	svc := NewExportService(mocks.NewMockGalleryRenderer(), booklet, newStubNormalizer(), logger.Nop())

	err := svc.ExportPDF(context.Background(), domain.Snapshot{}, "/out.pdf")
	if err != ErrPDFUnavailable {
		t.Errorf("expected ErrPDFUnavailable, got %v", err)
	}
	if len(booklet.GetCalls()) != 0 {
		t.Error("expected no render attempt when unavailable")
	}
}

func TestExportPDFRenders(t *testing.T) {
	booklet := mocks.NewMockBookletRenderer()
	svc := NewExportService(mocks.NewMockGalleryRenderer(), booklet, newStubNormalizer(), logger.Nop())

	if err := svc.ExportPDF(context.Background(), domain.Snapshot{}, "/out.pdf"); err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	calls := booklet.GetCalls()
	if len(calls) != 1 || calls[0] != "/out.pdf" {
		t.Errorf("expected render to /out.pdf, got %v", calls)
	}
}
