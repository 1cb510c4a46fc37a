package images

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cadmiumcmyk/curator/internal/core/ports"
	"github.com/cadmiumcmyk/curator/pkg/vault"
)

// Cache is a content-addressed thumbnail store under the vault cache
// root. Each tier is an independent directory keyed by a hash of the
// absolute source path, so two projects referencing the same file
// share one cached thumbnail.
type Cache struct {
	vault     *vault.Vault
	processor *Processor
	thumbPx   int
	previewPx int
}

// NewCache creates a thumbnail cache over the vault cache root
func NewCache(v *vault.Vault, processor *Processor, thumbPx, previewPx int) *Cache {
	return &Cache{
		vault:     v,
		processor: processor,
		thumbPx:   thumbPx,
		previewPx: previewPx,
	}
}

var _ ports.Thumbnailer = (*Cache)(nil)

// CacheKey returns the filename a source path is cached under
func CacheKey(sourcePath string) string {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		abs = sourcePath
	}
	sum := sha256.Sum256([]byte(abs))
	return hex.EncodeToString(sum[:]) + ".jpg"
}

// tierDir returns the directory for a tier
func (c *Cache) tierDir(tier ports.Tier) string {
	if tier == ports.TierPreview {
		return filepath.Join(c.vault.CacheRoot, "previews")
	}
	return filepath.Join(c.vault.CacheRoot, "thumbs")
}

// tierPx returns the bounding box for a tier
func (c *Cache) tierPx(tier ports.Tier) int {
	if tier == ports.TierPreview {
		return c.previewPx
	}
	return c.thumbPx
}

// Path returns the cache location for a source path and tier without
// generating anything
func (c *Cache) Path(sourcePath string, tier ports.Tier) string {
	return filepath.Join(c.tierDir(tier), CacheKey(sourcePath))
}

// GetOrCreate returns the cached thumbnail path for a source image,
// generating it if absent. Errors mean "no thumbnail" and are for the
// caller to report, never to abort on.
func (c *Cache) GetOrCreate(ctx context.Context, sourcePath string, tier ports.Tier) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dest := c.Path(sourcePath, tier)
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	if err := c.processor.Normalize(sourcePath, dest, c.tierPx(tier)); err != nil {
		return "", fmt.Errorf("failed to generate thumbnail: %w", err)
	}
	return dest, nil
}

// ForceRefresh regenerates both tiers for a source path, replacing any
// cached copies. Used after the source pixels change, e.g. rotation.
func (c *Cache) ForceRefresh(ctx context.Context, sourcePath string) error {
	for _, tier := range []ports.Tier{ports.TierThumb, ports.TierPreview} {
		if err := ctx.Err(); err != nil {
			return err
		}
		dest := c.Path(sourcePath, tier)
		if err := c.processor.Normalize(sourcePath, dest, c.tierPx(tier)); err != nil {
			return fmt.Errorf("failed to refresh thumbnail: %w", err)
		}
	}
	return nil
}
