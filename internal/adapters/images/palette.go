package images

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
)

// paletteSamplePx bounds the downscale used for color sampling
const paletteSamplePx = 150

// ExtractPalette returns the dominant colors of an image as hex
// strings, most frequent first. Colors are quantized to 32-value
// steps per channel so near-identical pixels count together.
func ExtractPalette(sourcePath string, count int) ([]string, error) {
	if count <= 0 {
		count = 5
	}

	img, err := imaging.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", sourcePath, err)
	}
	img = imaging.Fit(img, paletteSamplePx, paletteSamplePx, imaging.NearestNeighbor)

	type bucket struct {
		c color.NRGBA
		n int
	}
	counts := make(map[color.NRGBA]int)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if a>>8 < 128 {
				continue
			}
			q := color.NRGBA{
				R: quantize(uint8(r >> 8)),
				G: quantize(uint8(g >> 8)),
				B: quantize(uint8(bl >> 8)),
				A: 255,
			}
			counts[q]++
		}
	}

	buckets := make([]bucket, 0, len(counts))
	for c, n := range counts {
		buckets = append(buckets, bucket{c, n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].n != buckets[j].n {
			return buckets[i].n > buckets[j].n
		}
		return hexColor(buckets[i].c) < hexColor(buckets[j].c)
	})

	if len(buckets) > count {
		buckets = buckets[:count]
	}
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[i] = hexColor(b.c)
	}
	return out, nil
}

// quantize snaps a channel to the center of its 32-value step
func quantize(v uint8) uint8 {
	return (v/32)*32 + 16
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
