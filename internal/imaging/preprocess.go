package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/transform"
)

// Downsample scales an image down until it holds at most maxPixels pixels,
// preserving aspect ratio. Images already within budget, and any call with
// maxPixels <= 0, are returned unchanged.
//
// Downsampling trades exactness of per-cluster pixel counts for clustering
// time on large uploads; it is a transport-layer option, not part of the
// core contract.
func Downsample(img image.Image, maxPixels int) image.Image {
	if maxPixels <= 0 {
		return img
	}
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= maxPixels {
		return img
	}

	scale := math.Sqrt(float64(maxPixels) / float64(total))
	width := int(float64(bounds.Dx()) * scale)
	height := int(float64(bounds.Dy()) * scale)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return transform.Resize(img, width, height, transform.Linear)
}

// Smooth applies a Gaussian blur with the given radius, softening the
// speckle that block compression leaves around edges so it does not seed
// spurious clusters. A radius <= 0 returns the image unchanged.
func Smooth(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}
