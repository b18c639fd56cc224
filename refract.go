package liquidglass

import (
	"math"

	"github.com/glassfx/liquidglass/internal/parallel"
)

// DisplacementField holds the per-pixel horizontal offset produced by
// tracing a vertical ray through the glass surface: "sample the background
// (dx, dy) device pixels away from here". Max reports the largest |dx| or
// |dy| over the whole field, the scale factor a compositor needs to drive an
// image-based displacement filter.
type DisplacementField struct {
	width  int
	height int
	dx     []float64
	dy     []float64
	max    float64
}

// Width returns the width of the field in device pixels.
func (f *DisplacementField) Width() int {
	return f.width
}

// Height returns the height of the field in device pixels.
func (f *DisplacementField) Height() int {
	return f.height
}

// At returns the displacement vector at the given device pixel.
func (f *DisplacementField) At(x, y int) Vec2 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Vec2{}
	}
	i := y*f.width + x
	return Vec2{X: f.dx[i], Y: f.dy[i]}
}

// Max returns the maximum of |dx| and |dy| over the whole field.
func (f *DisplacementField) Max() float64 {
	return f.max
}

// SimulateRefraction applies Snell's law to every bevel-band normal against
// the vertical incident ray I = (0, 0, -1), then projects the transmitted
// ray from the surface height down to the base plane to obtain a per-pixel
// 2-D displacement.
//
// Only pixels strictly inside the bevel band (penetration < 1) refract. At
// the flat interior the transmitted ray equals the incident ray, so those
// pixels are (0, 0) exactly; masking by penetration keeps that identity even
// where the finite-difference gradient straddles the band/interior boundary,
// and makes a zero-width bevel (or a zero-thickness slab) produce an
// all-zero field.
//
// The entry path is air (n1 = 1) into glass (n2 = refractiveIndex), so total
// internal reflection cannot occur for a valid index; sin(theta2) is still
// clamped to [0, 1] so a degenerate normal can never produce NaN. Returns
// ErrRefractiveIndex when refractiveIndex <= 1.
func SimulateRefraction(geo Geometry, hf *HeightField, nf *NormalField, refractiveIndex float64, opts ...Option) (*DisplacementField, error) {
	if refractiveIndex <= 1 {
		return nil, ErrRefractiveIndex
	}
	geo = geo.Normalize()
	o := applyOptions(opts)

	w, h := hf.width, hf.height
	f := &DisplacementField{width: w, height: h}
	if w <= 0 || h <= 0 {
		return f, nil
	}
	f.dx = make([]float64, w*h)
	f.dy = make([]float64, w*h)

	eta := 1 / refractiveIndex

	parallel.Rows(h, o.workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			py := float64(y) + 0.5
			for x := 0; x < w; x++ {
				pen, inside := geo.Penetration(float64(x)+0.5, py)
				if !inside || pen >= 1 {
					continue
				}

				i := y*w + x
				height := hf.data[i]
				nx, ny := nf.nx[i], nf.ny[i]
				if height == 0 || (nx == 0 && ny == 0) {
					continue
				}

				cos1 := clamp01(nf.nz[i]) // dot(-I, N) with I = (0, 0, -1)
				sin2 := eta * math.Sqrt(1-cos1*cos1)
				if sin2 > 1 {
					sin2 = 1
				}
				cos2 := math.Sqrt(1 - sin2*sin2)

				// T = eta*I + (eta*cos1 - cos2)*N
				k := eta*cos1 - cos2
				tx := k * nx
				ty := k * ny
				tz := k*nf.nz[i] - eta
				if tz >= -1e-12 {
					// Grazing transmitted ray; it never reaches the base
					// plane within the slab, treat as no offset.
					continue
				}

				// March T over a vertical drop of height.
				s := height / -tz
				f.dx[i] = tx * s
				f.dy[i] = ty * s
			}
		}
	})

	// Serial max scan keeps the parallel pass synchronization-free.
	for i := range f.dx {
		if v := math.Abs(f.dx[i]); v > f.max {
			f.max = v
		}
		if v := math.Abs(f.dy[i]); v > f.max {
			f.max = v
		}
	}

	Logger().Debug("refraction simulated",
		"width", w, "height", h, "max_displacement", f.max)
	return f, nil
}
