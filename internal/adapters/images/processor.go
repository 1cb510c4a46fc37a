package images

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

var flattenBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Processor normalizes source images for display and export: decode,
// flatten transparency onto white, bound to a square box without
// upscaling, encode as JPEG.
type Processor struct {
	Quality int
}

// NewProcessor creates a processor with the given JPEG quality
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{Quality: quality}
}

// Normalize reads sourcePath, bounds it to maxPx and writes the result
// as a JPEG at destPath
func (p *Processor) Normalize(sourcePath, destPath string, maxPx int) error {
	img, err := imaging.Open(sourcePath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", sourcePath, err)
	}

	img = p.bound(img, maxPx)
	img = flatten(img)

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, destPath, imaging.JPEGQuality(p.Quality)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", destPath, err)
	}
	return nil
}

// bound fits img inside a maxPx square, never upscaling
func (p *Processor) bound(img image.Image, maxPx int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxPx && b.Dy() <= maxPx {
		return img
	}
	return imaging.Fit(img, maxPx, maxPx, imaging.Lanczos)
}

// flatten composites the image onto a white background so transparent
// PNG regions don't turn black in the JPEG encode
func flatten(img image.Image) image.Image {
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), flattenBackground)
	return imaging.OverlayCenter(bg, img, 1.0)
}
