package liquidglass

import "github.com/glassfx/liquidglass/internal/parallel"

// HeightField is a dense grid of simulated glass surface heights, one
// float64 per device pixel. Values are 0 outside the glass footprint and
// rise to the configured glass thickness at the flat interior.
type HeightField struct {
	width  int
	height int
	data   []float64
}

// Width returns the width of the field in device pixels.
func (f *HeightField) Width() int {
	return f.width
}

// Height returns the height of the field in device pixels.
func (f *HeightField) Height() int {
	return f.height
}

// At returns the surface height at the given device pixel.
// Out-of-range coordinates return 0 (the base plane extends past the grid).
func (f *HeightField) At(x, y int) float64 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.data[y*f.width+x]
}

// atClamped samples with coordinates clamped to the grid, for gradient
// estimation at the border.
func (f *HeightField) atClamped(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= f.width {
		x = f.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= f.height {
		y = f.height - 1
	}
	return f.data[y*f.width+x]
}

// BuildHeightField samples the bezel profile over the geometry's bevel-band
// classification, producing one height per device pixel. Pixels are sampled
// at their centers. A zero-area canvas yields an empty field.
func BuildHeightField(geo Geometry, cfg OpticalConfig, opts ...Option) *HeightField {
	geo = geo.Normalize()
	cfg = cfg.normalize()
	o := applyOptions(opts)

	w, h := geo.GridSize()
	f := &HeightField{width: w, height: h}
	if w <= 0 || h <= 0 {
		f.width, f.height = 0, 0
		return f
	}
	f.data = make([]float64, w*h)

	parallel.Rows(h, o.workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := f.data[y*w : (y+1)*w]
			py := float64(y) + 0.5
			for x := 0; x < w; x++ {
				pen, inside := geo.Penetration(float64(x)+0.5, py)
				if !inside {
					continue
				}
				row[x] = cfg.GlassThickness * clamp01(cfg.BezelHeight(pen))
			}
		}
	})

	Logger().Debug("height field built",
		"width", w, "height", h, "thickness", cfg.GlassThickness)
	return f
}
