package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-lens-pathtracer/pkg/config"
	"github.com/df07/go-lens-pathtracer/pkg/imageio"
	"github.com/df07/go-lens-pathtracer/pkg/renderer"
	"github.com/df07/go-lens-pathtracer/pkg/scene"
)

// RenderFlags are the flags of the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "YAML render config; flags override its values",
	},
	cli.StringFlag{
		Name:  "scene, s",
		Value: config.Default().Scene,
		Usage: "preset name or path to a .yaml scene file",
	},
	cli.IntFlag{
		Name:  "width",
		Value: config.Default().Width,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: config.Default().Height,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: config.Default().SamplesPerPixel,
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "depth",
		Value: config.Default().MaxDepth,
		Usage: "maximum ray bounces",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of render workers (0 = one per CPU)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: config.Default().Seed,
		Usage: "sampler seed",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "output image (.png or .ppm); defaults to output/<scene>/render_<timestamp>.png",
	},
	cli.StringFlag{
		Name:  "save-config",
		Usage: "write the effective render config to this file",
	},
}

// RenderFrame renders a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := renderSettings(ctx)
	if err != nil {
		return err
	}

	sceneObj, cameraConfig, err := scene.Open(settings.Scene, settings.Seed)
	if err != nil {
		return err
	}
	if settings.Camera != nil {
		cameraConfig = *settings.Camera
	}
	logger.Infof("scene %q has %d objects", settings.Scene, sceneObj.Len())

	if path := ctx.String("save-config"); path != "" {
		saved := settings
		saved.Camera = &cameraConfig
		if err := config.Save(path, saved); err != nil {
			return err
		}
		logger.Noticef("config written to %s", path)
	}

	camera := cameraConfig.Build(settings)
	img, stats := camera.CaptureImageParallel(sceneObj, settings.Workers)

	out := settings.Output
	if out == "" {
		out = defaultOutputPath(settings.Scene, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := imageio.Save(out, img); err != nil {
		return err
	}

	displayFrameStats(stats)
	logger.Noticef("render saved as %s", out)
	return nil
}

// renderSettings loads the optional config file and applies explicitly
// set flags on top of it.
func renderSettings(ctx *cli.Context) (config.Render, error) {
	settings := config.Default()
	if path := ctx.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}

	if ctx.IsSet("scene") {
		settings.Scene = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		settings.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		settings.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		settings.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		settings.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("workers") {
		settings.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		settings.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("out") {
		settings.Output = ctx.String("out")
	}

	return settings, settings.Validate()
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

func frameStatsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		percent := 0.0
		if stats.Height > 0 {
			percent = 100 * float64(stat.Rows) / float64(stats.Height)
		}
		table.Append([]string{
			fmt.Sprintf("%d", stat.ID),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%02.1f %%", percent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%dx%d @ %d spp", stats.Width, stats.Height, stats.SamplesPerPixel),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		"TOTAL",
		stats.RenderTime.String(),
	})

	table.Render()
	return buf.String()
}
