package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for render settings that cannot produce an image
var ErrInvalidConfig = errors.New("invalid config")

// Render holds the settings of one render job
type Render struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	Workers         int     `yaml:"workers"` // 0 = one per CPU
	Seed            int64   `yaml:"seed"`
	Scene           string  `yaml:"scene"`            // preset name or scene file path
	Output          string  `yaml:"output,omitempty"` // .png or .ppm, empty picks a timestamped path
	Camera          *Camera `yaml:"camera,omitempty"` // replaces the scene's camera
}

// Default returns the settings used when no config file is given
func Default() Render {
	return Render{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         0,
		Seed:            1,
		Scene:           "cover",
	}
}

// Load reads a YAML render config. Fields missing from the file keep their
// Default values.
func Load(path string) (Render, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, c.Validate()
}

// Save writes c as YAML
func Save(path string, c Render) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate reports the first setting that cannot be rendered
func (c Render) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples_per_pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max_depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	case c.Scene == "":
		return fmt.Errorf("%w: scene is required", ErrInvalidConfig)
	}
	return nil
}
