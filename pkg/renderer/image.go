package renderer

import "github.com/df07/go-lens-pathtracer/pkg/core"

// Image is a width x height buffer of gamma-corrected colours in row-major
// order, with (0, 0) at the top left.
type Image struct {
	width  int
	height int
	pixels []core.Colour
}

// NewImage creates a black image. Negative dimensions are treated as zero.
func NewImage(width, height int) *Image {
	width = max(width, 0)
	height = max(height, 0)
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Colour, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// Dimensions returns width and height
func (img *Image) Dimensions() (int, int) { return img.width, img.height }

// At returns the colour at (x, y)
func (img *Image) At(x, y int) core.Colour {
	return img.pixels[y*img.width+x]
}

// Set stores the colour at (x, y)
func (img *Image) Set(x, y int, c core.Colour) {
	img.pixels[y*img.width+x] = c
}

// Pixels returns the backing buffer in row-major order
func (img *Image) Pixels() []core.Colour {
	return img.pixels
}

// AverageLuminance returns the mean luminance over every pixel
func (img *Image) AverageLuminance() float64 {
	if len(img.pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range img.pixels {
		total += c.Luminance()
	}
	return total / float64(len(img.pixels))
}
