// Package cli implements the lgrender command-line interface.
//
// lgrender renders the liquid-glass displacement and specular maps to PNG
// files. Parameters come from a TOML config file, individual flags, or both;
// flags win over the file. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library, which is also bridged into the
// engine's slog hook so --verbose exposes per-stage diagnostics.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/glassfx/liquidglass"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Execute runs the lgrender CLI and returns an error if rendering fails.
func Execute() error {
	var (
		verbose      bool
		cfgPath      string
		outDir       string
		previewScale float64
	)
	fl := DefaultConfig()

	root := &cobra.Command{
		Use:          "lgrender",
		Short:        "lgrender renders liquid-glass displacement and specular maps",
		Long: `lgrender synthesizes the per-pixel displacement map and specular
highlight map of a rounded, beveled glass surface and writes them as PNG
files for consumption by an image-based compositing filter.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			liquidglass.SetLogger(slog.New(logger))

			cfg := fl
			if cfgPath != "" {
				loaded, err := LoadConfig(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
				overrideChanged(cmd, &cfg, fl)
			}
			return render(logger, cfg, outDir, previewScale)
		},
	}

	flags := root.Flags()
	flags.Float64Var(&fl.ObjectWidth, "object-width", fl.ObjectWidth, "object width in CSS pixels")
	flags.Float64Var(&fl.ObjectHeight, "object-height", fl.ObjectHeight, "object height in CSS pixels")
	flags.Float64Var(&fl.Radius, "radius", fl.Radius, "corner radius in CSS pixels")
	flags.Float64Var(&fl.BezelWidth, "bezel-width", fl.BezelWidth, "bevel band width in CSS pixels")
	flags.Float64Var(&fl.CanvasWidth, "canvas-width", fl.CanvasWidth, "canvas width in CSS pixels (0 = object width)")
	flags.Float64Var(&fl.CanvasHeight, "canvas-height", fl.CanvasHeight, "canvas height in CSS pixels (0 = object height)")
	flags.Float64Var(&fl.DPR, "dpr", fl.DPR, "device pixel ratio")
	flags.Float64Var(&fl.GlassThickness, "thickness", fl.GlassThickness, "glass thickness in device pixels")
	flags.Float64Var(&fl.RefractiveIndex, "ior", fl.RefractiveIndex, "refractive index of the glass (> 1)")
	flags.StringVar(&fl.Profile, "profile", fl.Profile, "bezel profile: convex, concave or lip")
	flags.IntVar(&fl.Segments, "segments", fl.Segments, "angular samples per specular corner arc")
	flags.StringVarP(&cfgPath, "config", "c", "", "TOML config file (flags override it)")
	flags.StringVarP(&outDir, "out", "o", ".", "output directory")
	flags.Float64Var(&previewScale, "preview-scale", 0, "if > 0, also write a displacement preview scaled by this factor")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root.Execute()
}

// overrideChanged re-applies every flag the user set explicitly on top of a
// file-loaded config, so the precedence is defaults < file < flags.
func overrideChanged(cmd *cobra.Command, dst *Config, fl Config) {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("object-width", func() { dst.ObjectWidth = fl.ObjectWidth })
	set("object-height", func() { dst.ObjectHeight = fl.ObjectHeight })
	set("radius", func() { dst.Radius = fl.Radius })
	set("bezel-width", func() { dst.BezelWidth = fl.BezelWidth })
	set("canvas-width", func() { dst.CanvasWidth = fl.CanvasWidth })
	set("canvas-height", func() { dst.CanvasHeight = fl.CanvasHeight })
	set("dpr", func() { dst.DPR = fl.DPR })
	set("thickness", func() { dst.GlassThickness = fl.GlassThickness })
	set("ior", func() { dst.RefractiveIndex = fl.RefractiveIndex })
	set("profile", func() { dst.Profile = fl.Profile })
	set("segments", func() { dst.Segments = fl.Segments })
}

// render computes both maps and writes them under outDir.
func render(logger *charmlog.Logger, cfg Config, outDir string, previewScale float64) error {
	optical, err := cfg.Optical()
	if err != nil {
		return err
	}
	geo := cfg.Geometry()

	start := time.Now()
	maps, err := liquidglass.ComputeMaps(geo, optical, cfg.Segments)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	dispPath := filepath.Join(outDir, "displacement.png")
	if err := maps.Displacement.SavePNG(dispPath); err != nil {
		return fmt.Errorf("write %s: %w", dispPath, err)
	}
	specPath := filepath.Join(outDir, "specular.png")
	if err := maps.Specular.SavePNG(specPath); err != nil {
		return fmt.Errorf("write %s: %w", specPath, err)
	}

	if previewScale > 0 && previewScale != 1 {
		pw := int(math.Round(float64(maps.Displacement.Width()) * previewScale))
		ph := int(math.Round(float64(maps.Displacement.Height()) * previewScale))
		preview := maps.Displacement.Resize(pw, ph)
		previewPath := filepath.Join(outDir, "displacement_preview.png")
		if err := preview.SavePNG(previewPath); err != nil {
			return fmt.Errorf("write %s: %w", previewPath, err)
		}
	}

	logger.Info("maps rendered",
		"dir", outDir,
		"size", fmt.Sprintf("%dx%d", maps.Displacement.Width(), maps.Displacement.Height()),
		"max_displacement", maps.MaxDisplacement,
		"elapsed", time.Since(start))
	return nil
}
