package renderer

import "time"

// RenderStats contains statistics about one capture
type RenderStats struct {
	Width            int           // Image width in pixels
	Height           int           // Image height in pixels
	SamplesPerPixel  int           // Shutter length
	TotalSamples     int           // Camera rays traced
	Workers          []WorkerStat  // Per-worker breakdown, ordered by ID
	RenderTime       time.Duration // Wall-clock time of the capture
	AverageLuminance float64       // Mean luminance of the finished image
}

// WorkerStat tracks the rows one worker rendered
type WorkerStat struct {
	ID         int
	Rows       int
	RenderTime time.Duration // Time spent rendering, excluding queue waits
}

// SamplesPerSecond returns the sampling throughput of the capture
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

func (c *Camera) newStats(img *Image, elapsed time.Duration) RenderStats {
	return RenderStats{
		Width:            c.sensorWidth,
		Height:           c.sensorHeight,
		SamplesPerPixel:  c.shutterLength,
		TotalSamples:     c.sensorWidth * c.sensorHeight * c.shutterLength,
		RenderTime:       elapsed,
		AverageLuminance: img.AverageLuminance(),
	}
}
