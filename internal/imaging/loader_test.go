package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/colorlens/colorlens/internal/palette"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// encodePNG renders an image to PNG bytes
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	data := encodePNG(t, createInMemoryImage(8, 6, color.RGBA{10, 20, 30, 255}))

	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("bounds = %v, want 8x6", img.Bounds())
	}
}

func TestDecodeInvalidData(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Fatal("Decode accepted garbage input")
	}
}

func TestPixelsOrderAndValues(t *testing.T) {
	// 2x2 image with a distinct color per pixel: Pixels flattens in
	// row-major order.
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	want := []palette.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 255, B: 255},
	}

	got := Pixels(img)
	if len(got) != len(want) {
		t.Fatalf("got %d pixels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPixelsDiscardsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{100, 150, 200, 255})

	got := Pixels(img)
	if len(got) != 1 {
		t.Fatalf("got %d pixels, want 1", len(got))
	}
	if got[0] != (palette.RGB{R: 100, G: 150, B: 200}) {
		t.Errorf("pixel = %v, want {100 150 200}", got[0])
	}
}

func TestDownsampleRespectsBudget(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{40, 40, 40, 255})

	small := Downsample(img, 2500)
	bounds := small.Bounds()
	if total := bounds.Dx() * bounds.Dy(); total > 2500 {
		t.Errorf("downsampled image holds %d pixels, budget is 2500", total)
	}
	if bounds.Dx() != bounds.Dy() {
		t.Errorf("aspect ratio not preserved: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestDownsampleNoop(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{40, 40, 40, 255})

	if got := Downsample(img, 0); got != image.Image(img) {
		t.Error("Downsample with zero budget did not return the input image")
	}
	if got := Downsample(img, 100); got != image.Image(img) {
		t.Error("Downsample within budget did not return the input image")
	}
}

func TestSmoothNoop(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{40, 40, 40, 255})
	if got := Smooth(img, 0); got != image.Image(img) {
		t.Error("Smooth with zero radius did not return the input image")
	}
}

func TestSmoothKeepsUniformColor(t *testing.T) {
	img := createInMemoryImage(20, 20, color.RGBA{90, 120, 150, 255})

	smoothed := Smooth(img, 2)
	r, g, b, _ := smoothed.At(10, 10).RGBA()
	got := palette.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	if got != (palette.RGB{R: 90, G: 120, B: 150}) {
		t.Errorf("center pixel after smoothing = %v, want {90 120 150}", got)
	}
}
