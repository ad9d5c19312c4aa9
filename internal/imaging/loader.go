package imaging

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WEBP format decoder

	"github.com/colorlens/colorlens/internal/palette"
)

// Decode reads an image from r and returns it ready for analysis.
//
// PNG, JPEG, GIF, BMP, and TIFF are registered by the imaging library;
// WEBP via the blank import above. JPEG images carrying an EXIF
// orientation tag are rotated upright so region coordinates match what the
// uploader saw.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Pixels flattens an image into the clusterer's pixel array: an ordered
// sequence of RGB triples in row-major order. Alpha is discarded; the
// original upload is converted to plain RGB the same way.
func Pixels(img image.Image) []palette.RGB {
	bounds := img.Bounds()
	pixels := make([]palette.RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// Convert from 16-bit to 8-bit
			pixels = append(pixels, palette.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return pixels
}
