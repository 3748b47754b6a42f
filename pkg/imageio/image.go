package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-lens-pathtracer/pkg/core"
	"github.com/df07/go-lens-pathtracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for file extensions other than .ppm and .png
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Quantize maps a gamma-corrected channel to [0, 255]: c*256 clamped, then
// rounded half to even. NaN maps to 0.
func Quantize(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(math.RoundToEven(math.Max(0, math.Min(c*256, 255))))
}

func quantizeColour(c core.Colour) (uint8, uint8, uint8) {
	return Quantize(c.X), Quantize(c.Y), Quantize(c.Z)
}

// WritePPM writes img as a plain-text P3 raster with one pixel per line
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255", img.Width(), img.Height())
	for _, c := range img.Pixels() {
		r, g, b := quantizeColour(c)
		fmt.Fprintf(bw, "\n%d %d %d", r, g, b)
	}
	return bw.Flush()
}

// ToRGBA converts img to an opaque 8-bit image
func ToRGBA(img *renderer.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := quantizeColour(img.At(x, y))
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img *renderer.Image) error {
	return png.Encode(w, ToRGBA(img))
}

// Save writes img to path, choosing the encoder from the file extension
func Save(path string, img *renderer.Image) error {
	var encode func(io.Writer, *renderer.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		encode = WritePPM
	case ".png":
		encode = WritePNG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return file.Close()
}

// Load reads a PNG or JPEG image back into an Image with channels in [0, 1]
func Load(filename string) (*renderer.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := decoded.Bounds()
	img := renderer.NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := decoded.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			img.Set(x, y, core.NewColour(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			))
		}
	}
	return img, nil
}
