package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/glassfx/liquidglass"
)

// Config mirrors the engine parameters in a TOML-friendly shape. Lengths are
// CSS pixels. Canvas dimensions of 0 mean "same as the object".
type Config struct {
	ObjectWidth  float64 `toml:"object_width"`
	ObjectHeight float64 `toml:"object_height"`
	Radius       float64 `toml:"radius"`
	BezelWidth   float64 `toml:"bezel_width"`
	CanvasWidth  float64 `toml:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height"`
	DPR          float64 `toml:"dpr"`

	GlassThickness  float64 `toml:"glass_thickness"`
	RefractiveIndex float64 `toml:"refractive_index"`
	Profile         string  `toml:"profile"`
	Segments        int     `toml:"segments"`
}

// DefaultConfig returns a renderable starting point: a 240x160 slab with the
// engine's boundary defaults and a convex bevel.
func DefaultConfig() Config {
	return Config{
		ObjectWidth:     240,
		ObjectHeight:    160,
		Radius:          40,
		BezelWidth:      liquidglass.DefaultBezelWidth,
		DPR:             1,
		GlassThickness:  liquidglass.DefaultGlassThickness,
		RefractiveIndex: liquidglass.DefaultRefractiveIndex,
		Profile:         "convex",
		Segments:        liquidglass.DefaultSegments,
	}
}

// LoadConfig reads a TOML file over the defaults, so partial files work.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Geometry converts the config to the engine's geometry value.
func (c Config) Geometry() liquidglass.Geometry {
	return liquidglass.Geometry{
		ObjectWidth:  c.ObjectWidth,
		ObjectHeight: c.ObjectHeight,
		Radius:       c.Radius,
		BezelWidth:   c.BezelWidth,
		CanvasWidth:  c.CanvasWidth,
		CanvasHeight: c.CanvasHeight,
		DPR:          c.DPR,
	}
}

// Optical converts the config to the engine's optical parameters.
// Unknown profile names are an error rather than a silent fallback.
func (c Config) Optical() (liquidglass.OpticalConfig, error) {
	profile, ok := liquidglass.ProfileByName(c.Profile)
	if !ok {
		return liquidglass.OpticalConfig{}, fmt.Errorf("unknown bezel profile %q (want convex, concave or lip)", c.Profile)
	}
	cfg := liquidglass.DefaultOpticalConfig()
	cfg.GlassThickness = c.GlassThickness
	cfg.RefractiveIndex = c.RefractiveIndex
	cfg.BezelHeight = profile
	return cfg, nil
}
