package images

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// RotateCW rotates the source image 90 degrees clockwise and writes it
// back in place, re-encoding in the original format. Callers must
// refresh any cached thumbnails afterwards.
func RotateCW(sourcePath string) error {
	img, err := imaging.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", sourcePath, err)
	}

	// imaging.Rotate90 turns counter-clockwise
	rotated := imaging.Rotate270(img)

	opts := []imaging.EncodeOption{}
	if ext := strings.ToLower(filepath.Ext(sourcePath)); ext == ".jpg" || ext == ".jpeg" {
		opts = append(opts, imaging.JPEGQuality(95))
	}
	if err := imaging.Save(rotated, sourcePath, opts...); err != nil {
		return fmt.Errorf("failed to write rotated image: %w", err)
	}
	return nil
}
