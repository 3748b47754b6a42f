package renderer

import (
	"math"
	"time"

	"github.com/df07/go-lens-pathtracer/pkg/core"
	"github.com/df07/go-lens-pathtracer/pkg/log"
	"github.com/df07/go-lens-pathtracer/pkg/material"
)

var logger = log.New("renderer")

// shadowAcneEpsilon is the minimum hit distance for traced rays
const shadowAcneEpsilon = 0.001

var skyBlue = core.NewColour(0.5, 0.7, 1.0)

// ObjectStorage finds the nearest intersection along a ray. The renderer
// only reads from it.
type ObjectStorage interface {
	FindIntersection(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
}

// TraceRay returns the colour carried back along ray, following at most
// depth scattering events.
func TraceRay(ray core.Ray, storage ObjectStorage, depth int, sampler core.Sampler) core.Colour {
	if depth <= 0 {
		return core.Black
	}

	hit, isHit := storage.FindIntersection(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return Background(ray)
	}

	scatter, didScatter := hit.Scatter(sampler)
	if !didScatter {
		return core.Black
	}
	return scatter.Attenuation.Attenuate(TraceRay(scatter.Scattered, storage, depth-1, sampler))
}

// Background is the sky gradient seen by rays that escape the scene:
// white at the horizon blending to blue overhead.
func Background(ray core.Ray) core.Colour {
	unitDirection := ray.Direction.Unit()
	a := 0.5 * (unitDirection.Y + 1.0)
	return core.White.Lerp(skyBlue, a)
}

// CaptureImage renders every pixel on the calling goroutine
func (c *Camera) CaptureImage(storage ObjectStorage) (*Image, RenderStats) {
	logger.Debugf("capturing %dx%d image, %d samples per pixel", c.sensorWidth, c.sensorHeight, c.shutterLength)
	start := time.Now()

	img := NewImage(c.sensorWidth, c.sensorHeight)
	for y := 0; y < c.sensorHeight; y++ {
		c.renderRow(storage, img, y)
	}

	stats := c.newStats(img, time.Since(start))
	stats.Workers = []WorkerStat{{ID: 0, Rows: c.sensorHeight, RenderTime: stats.RenderTime}}
	logger.Debugf("capture finished in %v", stats.RenderTime)
	return img, stats
}

// renderRow fills row y of img. Each row draws from its own sampler so rows
// can be rendered in any order with the same result.
func (c *Camera) renderRow(storage ObjectStorage, img *Image, y int) {
	sampler := core.NewSeededSampler(c.rowSeed(y))
	scale := 1.0 / float64(c.shutterLength)

	for x := 0; x < c.sensorWidth; x++ {
		total := core.Black
		for s := 0; s < c.shutterLength; s++ {
			ray := c.GetRay(x, y, sampler)
			total = total.Add(TraceRay(ray.UnitRay(), storage, c.maxRayDepth, sampler))
		}
		img.Set(x, y, total.Multiply(scale).LinearToGamma())
	}
}
