package images

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/cadmiumcmyk/curator/internal/core/ports"
	"github.com/cadmiumcmyk/curator/pkg/vault"
)

// writeTestImage writes a solid-color image of the given size
func writeTestImage(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := imaging.New(w, h, c)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to write fixture image: %v", err)
	}
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	root := t.TempDir()
	v := &vault.Vault{
		ConfigRoot: filepath.Join(root, "config"),
		CacheRoot:  filepath.Join(root, "cache"),
		ThemesPath: filepath.Join(root, "config", "themes"),
	}
	return NewCache(v, NewProcessor(85), 600, 1920)
}

func TestProcessorDownscalesLargeImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "big.png")
	dest := filepath.Join(dir, "out.jpg")
	writeTestImage(t, src, 1200, 800, color.NRGBA{R: 200, G: 40, B: 40, A: 255})

	p := NewProcessor(85)
	if err := p.Normalize(src, dest, 600); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	img, err := imaging.Open(dest)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 600 || b.Dy() != 400 {
		t.Errorf("expected 600x400, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcessorNeverUpscales(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "small.png")
	dest := filepath.Join(dir, "out.jpg")
	writeTestImage(t, src, 100, 80, color.NRGBA{R: 10, G: 120, B: 30, A: 255})

	p := NewProcessor(85)
	if err := p.Normalize(src, dest, 600); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	img, err := imaging.Open(dest)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("expected original 100x80 kept, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcessorFlattensTransparency(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "trans.png")
	dest := filepath.Join(dir, "out.jpg")
	writeTestImage(t, src, 50, 50, color.NRGBA{R: 0, G: 0, B: 0, A: 0})

	p := NewProcessor(85)
	if err := p.Normalize(src, dest, 600); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	img, err := imaging.Open(dest)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	r, g, b, _ := img.At(25, 25).RGBA()
	if r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Errorf("expected transparent region flattened to white, got rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestProcessorDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "fake.jpg")
	if err := os.WriteFile(src, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	p := NewProcessor(85)
	if err := p.Normalize(src, filepath.Join(dir, "out.jpg"), 600); err == nil {
		t.Error("expected error for undecodable file, got nil")
	}
}

func TestCacheKeyStableAndSuffixed(t *testing.T) {
	k1 := CacheKey("/art/dragon.png")
	k2 := CacheKey("/art/dragon.png")
	if k1 != k2 {
		t.Error("expected identical keys for identical paths")
	}
	if !strings.HasSuffix(k1, ".jpg") {
		t.Errorf("expected .jpg suffix, got %q", k1)
	}
	if k1 == CacheKey("/art/other.png") {
		t.Error("expected distinct keys for distinct paths")
	}
}

func TestCacheGetOrCreateIdempotent(t *testing.T) {
	c := newTestCache(t)
	src := filepath.Join(t.TempDir(), "a.png")
	writeTestImage(t, src, 800, 800, color.NRGBA{R: 9, G: 9, B: 200, A: 255})
	ctx := context.Background()

	path1, err := c.GetOrCreate(ctx, src, ports.TierThumb)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	info1, err := os.Stat(path1)
	if err != nil {
		t.Fatalf("expected cached file to exist: %v", err)
	}

	path2, err := c.GetOrCreate(ctx, src, ports.TierThumb)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if path1 != path2 {
		t.Errorf("expected stable cache path, got %q then %q", path1, path2)
	}
	info2, _ := os.Stat(path2)
	if !info1.ModTime().Equal(info2.ModTime()) {
		t.Error("expected second call to reuse cached file, not regenerate")
	}
}

func TestCacheTiersAreIndependent(t *testing.T) {
	c := newTestCache(t)
	src := filepath.Join(t.TempDir(), "a.png")
	writeTestImage(t, src, 2500, 2500, color.NRGBA{R: 80, G: 80, B: 80, A: 255})
	ctx := context.Background()

	thumb, err := c.GetOrCreate(ctx, src, ports.TierThumb)
	if err != nil {
		t.Fatalf("thumb failed: %v", err)
	}
	preview, err := c.GetOrCreate(ctx, src, ports.TierPreview)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if thumb == preview {
		t.Error("expected distinct paths per tier")
	}

	ti, _ := imaging.Open(thumb)
	pi, _ := imaging.Open(preview)
	if ti.Bounds().Dx() != 600 {
		t.Errorf("expected thumb bound 600, got %d", ti.Bounds().Dx())
	}
	if pi.Bounds().Dx() != 1920 {
		t.Errorf("expected preview bound 1920, got %d", pi.Bounds().Dx())
	}
}

func TestCacheGetOrCreateFailure(t *testing.T) {
	c := newTestCache(t)
	if _, err := c.GetOrCreate(context.Background(), "/nope/missing.png", ports.TierThumb); err == nil {
		t.Error("expected error for missing source, got nil")
	}
}

func TestCacheForceRefreshRegenerates(t *testing.T) {
	c := newTestCache(t)
	src := filepath.Join(t.TempDir(), "a.png")
	writeTestImage(t, src, 400, 300, color.NRGBA{R: 10, G: 200, B: 10, A: 255})
	ctx := context.Background()

	thumb, err := c.GetOrCreate(ctx, src, ports.TierThumb)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	// Change the source pixels, then refresh
	writeTestImage(t, src, 300, 400, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	if err := c.ForceRefresh(ctx, src); err != nil {
		t.Fatalf("ForceRefresh failed: %v", err)
	}

	img, err := imaging.Open(thumb)
	if err != nil {
		t.Fatalf("failed to open refreshed thumb: %v", err)
	}
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 400 {
		t.Errorf("expected refreshed 300x400, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Preview tier refreshed too
	if _, err := os.Stat(c.Path(src, ports.TierPreview)); err != nil {
		t.Errorf("expected preview tier generated by refresh: %v", err)
	}
}

func TestRotateCWSwapsDimensions(t *testing.T) {
	src := filepath.Join(t.TempDir(), "r.png")
	writeTestImage(t, src, 300, 200, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	if err := RotateCW(src); err != nil {
		t.Fatalf("RotateCW failed: %v", err)
	}

	img, err := imaging.Open(src)
	if err != nil {
		t.Fatalf("failed to open rotated image: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 300 {
		t.Errorf("expected 200x300 after rotate, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRotateCWDirection(t *testing.T) {
	src := filepath.Join(t.TempDir(), "dir.png")
	// Top row red, rest blue. After a clockwise turn the red edge is
	// on the right.
	img := imaging.New(4, 4, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	}
	if err := imaging.Save(img, src); err != nil {
		t.Fatal(err)
	}

	if err := RotateCW(src); err != nil {
		t.Fatalf("RotateCW failed: %v", err)
	}

	out, err := imaging.Open(src)
	if err != nil {
		t.Fatal(err)
	}
	r, _, _, _ := out.At(3, 1).RGBA()
	if r>>8 < 200 {
		t.Error("expected top edge to land on the right after clockwise rotation")
	}
}

func TestExtractPalette(t *testing.T) {
	src := filepath.Join(t.TempDir(), "p.png")
	// Two-tone image, two thirds red
	img := imaging.New(90, 30, color.NRGBA{R: 220, G: 30, B: 30, A: 255})
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			img.Set(x, y, color.NRGBA{R: 30, G: 30, B: 220, A: 255})
		}
	}
	if err := imaging.Save(img, src); err != nil {
		t.Fatal(err)
	}

	colors, err := ExtractPalette(src, 5)
	if err != nil {
		t.Fatalf("ExtractPalette failed: %v", err)
	}
	if len(colors) < 2 {
		t.Fatalf("expected at least 2 colors, got %d", len(colors))
	}
	for _, c := range colors {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("expected #rrggbb hex string, got %q", c)
		}
	}
	// Dominant color first, quantized to its bucket center
	if colors[0] != "#e01010" {
		t.Errorf("expected dominant red bucket first, got %q", colors[0])
	}
	if colors[1] != "#1010e0" {
		t.Errorf("expected blue bucket second, got %q", colors[1])
	}
}

func TestExtractPaletteDecodeFailure(t *testing.T) {
	src := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(src, []byte("nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ExtractPalette(src, 5); err == nil {
		t.Error("expected error for undecodable file, got nil")
	}
}
