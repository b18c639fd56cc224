package liquidglass

import "math"

// Geometry describes the glass footprint and the canvas it is sampled on.
// All lengths are in CSS pixels; DPR converts them to device pixels. The
// canvas may be larger than the object to leave margin for downstream blur;
// the object is centered on the canvas.
type Geometry struct {
	ObjectWidth  float64
	ObjectHeight float64
	Radius       float64
	BezelWidth   float64
	CanvasWidth  float64
	CanvasHeight float64
	DPR          float64
}

// Normalize returns a copy of the geometry with every parameter clamped to
// its valid range:
//
//   - negative lengths become 0
//   - the canvas is at least as large as the object
//   - DPR <= 0 becomes 1
//   - radius is at most min(width, height)/2
//   - bezel width is clamped to [0, 2*radius-1]
//
// Callers are expected to pass valid values already; Normalize makes the
// engine total over arbitrary input instead of panicking.
func (g Geometry) Normalize() Geometry {
	if g.ObjectWidth < 0 {
		g.ObjectWidth = 0
	}
	if g.ObjectHeight < 0 {
		g.ObjectHeight = 0
	}
	if g.CanvasWidth < g.ObjectWidth {
		g.CanvasWidth = g.ObjectWidth
	}
	if g.CanvasHeight < g.ObjectHeight {
		g.CanvasHeight = g.ObjectHeight
	}
	if g.DPR <= 0 {
		g.DPR = 1
	}

	maxRadius := math.Min(g.ObjectWidth, g.ObjectHeight) / 2
	if g.Radius < 0 {
		g.Radius = 0
	}
	if g.Radius > maxRadius {
		g.Radius = maxRadius
	}

	maxBezel := 2*g.Radius - 1
	if maxBezel < 0 {
		maxBezel = 0
	}
	if g.BezelWidth < 0 {
		g.BezelWidth = 0
	}
	if g.BezelWidth > maxBezel {
		g.BezelWidth = maxBezel
	}
	return g
}

// GridSize returns the device-pixel dimensions of the sampling grid.
func (g Geometry) GridSize() (width, height int) {
	return int(math.Round(g.CanvasWidth * g.DPR)), int(math.Round(g.CanvasHeight * g.DPR))
}

// SDF returns the signed distance in device pixels from (x, y) to the
// boundary of the rounded rectangle, negative inside and positive outside.
// Coordinates are in device pixels with the object centered on the canvas.
func (g Geometry) SDF(x, y float64) float64 {
	cx := g.CanvasWidth * g.DPR / 2
	cy := g.CanvasHeight * g.DPR / 2
	return sdfRoundedRect(x, y, cx, cy,
		g.ObjectWidth*g.DPR/2, g.ObjectHeight*g.DPR/2, g.Radius*g.DPR)
}

// Penetration classifies a device-pixel coordinate against the bevel band.
// It returns how far across the band the point lies (0 at the outer edge of
// the bevel, 1 at the start of the flat interior) and whether the point is
// inside the glass footprint at all.
//
// A bevel width of ~0 degenerates to a hard edge: every interior point is
// immediately at penetration 1.
func (g Geometry) Penetration(x, y float64) (float64, bool) {
	d := g.SDF(x, y)
	if d > 0 {
		return 0, false
	}
	bw := g.BezelWidth * g.DPR
	if bw < 1e-9 {
		return 1, true
	}
	p := -d / bw
	if p > 1 {
		p = 1
	}
	return p, true
}

// sdfRoundedRect computes the signed distance from a point to a rounded
// rectangle. Negative values are inside, positive values are outside.
func sdfRoundedRect(px, py, cx, cy, halfW, halfH, cornerRadius float64) float64 {
	// Translate to center and use symmetry (work in first quadrant).
	dx := math.Abs(px-cx) - halfW + cornerRadius
	dy := math.Abs(py-cy) - halfH + cornerRadius

	// Outside the corner region: max(dx, dy) gives the distance to the edge.
	// Inside the corner region: the Euclidean distance to the corner circle.
	outside := math.Sqrt(math.Max(dx, 0)*math.Max(dx, 0) + math.Max(dy, 0)*math.Max(dy, 0))
	inside := math.Min(math.Max(dx, dy), 0)

	return outside + inside - cornerRadius
}
