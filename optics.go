package liquidglass

import "errors"

// Defaults observed at the compositing boundary. Callers that do not care
// about individual parameters should start from DefaultOpticalConfig.
const (
	DefaultGlassThickness     = 40.0
	DefaultBezelWidth         = 20.0
	DefaultRefractiveIndex    = 1.5
	DefaultSpecularOpacity    = 0.4
	DefaultSpecularSaturation = 4.0
	DefaultSegments           = 50
)

// ErrRefractiveIndex reports a physically invalid refractive index. Snell's
// law on the air-to-glass entry path requires an index strictly above 1;
// anything at or below 1 is a caller bug, not a runtime condition.
var ErrRefractiveIndex = errors.New("liquidglass: refractive index must be greater than 1")

// OpticalConfig carries the optical parameters of the glass slab.
type OpticalConfig struct {
	// GlassThickness is the height of the flat interior above the base
	// plane, in device pixels. Negative values are treated as 0.
	GlassThickness float64

	// RefractiveIndex is the index of the glass medium relative to air.
	// Must be > 1; see ErrRefractiveIndex.
	RefractiveIndex float64

	// BezelHeight shapes the bevel band. Nil selects ProfileConvex.
	BezelHeight BezelProfile

	// SpecularOpacity and SpecularSaturation are passed through to the
	// compositor for tinting the specular layer; the engine itself only
	// records them (the specular alpha is tint-independent).
	SpecularOpacity    float64
	SpecularSaturation float64
}

// DefaultOpticalConfig returns the boundary defaults with a convex bevel.
func DefaultOpticalConfig() OpticalConfig {
	return OpticalConfig{
		GlassThickness:     DefaultGlassThickness,
		RefractiveIndex:    DefaultRefractiveIndex,
		BezelHeight:        ProfileConvex,
		SpecularOpacity:    DefaultSpecularOpacity,
		SpecularSaturation: DefaultSpecularSaturation,
	}
}

// normalize clamps recoverable fields. Unlike validate it never fails.
func (c OpticalConfig) normalize() OpticalConfig {
	if c.GlassThickness < 0 {
		c.GlassThickness = 0
	}
	if c.BezelHeight == nil {
		c.BezelHeight = ProfileConvex
	}
	return c
}

// validate rejects configurations the refraction formula is undefined for.
func (c OpticalConfig) validate() error {
	if c.RefractiveIndex <= 1 {
		return ErrRefractiveIndex
	}
	return nil
}
