package liquidglass

import (
	"math"

	"github.com/glassfx/liquidglass/internal/parallel"
)

const (
	// defaultSpecularFalloff keeps the highlight narrow; injectable via
	// WithFalloff for fixture-matching against a reference render.
	defaultSpecularFalloff = 8.0

	// defaultLightZ is the fixed out-of-page component of the light
	// direction: the light sits above the page, tilted toward the viewer.
	defaultLightZ = 0.7

	// specularEdgeAA is the smoothstep half-width, in device pixels, used
	// to fade the highlight at the shape's outer edge.
	specularEdgeAA = 0.7
)

// defaultLight is the virtual light the rim highlight is sampled against:
// directly above the shape, tilted toward the viewer.
func defaultLight() Vec3 {
	return Vec3{X: 0, Y: -defaultLightZ, Z: defaultLightZ}.Normalize()
}

// ComputeSpecular renders the specular highlight layer for a rounded
// rectangle of width x height CSS pixels with the given corner radius,
// sampled at dpr device pixels per CSS pixel. The returned buffer encodes
// highlight intensity in the alpha channel with RGB fixed to white; tinting
// and saturation are a downstream color-matrix concern.
//
// segments controls how many discrete angular samples approximate each
// corner arc of the rim. Higher counts produce smoother round-corner
// highlights at proportionally higher cost; values below 1 are clamped to 1.
//
// The light direction, falloff exponent, band width and opacity are
// configurable via WithLightDirection, WithFalloff, WithRimWidth and
// WithHighlightOpacity.
func ComputeSpecular(width, height, radius float64, segments int, dpr float64, opts ...Option) *Pixmap {
	o := applyOptions(opts)
	if dpr <= 0 {
		dpr = 1
	}
	if segments < 1 {
		segments = 1
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	maxRadius := math.Min(width, height) / 2
	if radius < 0 {
		radius = 0
	}
	if radius > maxRadius {
		radius = maxRadius
	}

	w := int(math.Round(width * dpr))
	h := int(math.Round(height * dpr))
	pm := NewPixmap(w, h)
	if w <= 0 || h <= 0 {
		return pm
	}

	// Resolve device-pixel quantities.
	dw, dh, r := width*dpr, height*dpr, radius*dpr
	band := o.rimWidth * dpr
	if band <= 0 {
		band = math.Max(2, radius/3) * dpr
	}
	light := o.light
	if !o.hasLight {
		light = defaultLight()
	}

	rim := rimPolyline(dw, dh, r, segments)
	data := pm.Data()

	parallel.Rows(h, o.workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			py := float64(y) + 0.5
			for x := 0; x < w; x++ {
				px := float64(x) + 0.5

				// Cheap analytic reject: only pixels near the rim matter.
				d := sdfRoundedRect(px, py, dw/2, dh/2, dw/2, dh/2, r)
				if d > specularEdgeAA || d < -(band+1) {
					continue
				}

				q, dist := nearestOnPolyline(rim, px, py)

				// Outward in-page direction from the rim at this pixel.
				ox, oy := px-q.X, py-q.Y
				if d < 0 {
					ox, oy = -ox, -oy
				}
				if n := math.Hypot(ox, oy); n > 0 {
					ox, oy = ox/n, oy/n
				} else {
					ox, oy = 0, -1
				}

				// Rim normal: horizontal at the rim, swinging up to vertical
				// at the inner edge of the band (a quarter-round bevel).
				t := clamp01(dist / band)
				elev := t * math.Pi / 2
				cosE, sinE := math.Cos(elev), math.Sin(elev)
				n := Vec3{X: ox * cosE, Y: oy * cosE, Z: sinE}

				intensity := math.Pow(math.Max(n.Dot(light), 0), o.falloff)

				// Taper to zero at the band's inner edge so the flat
				// interior stays clean.
				intensity *= 1 - t*t*(3-2*t)

				// Soft cutoff at the shape's outer edge.
				intensity *= edgeCoverage(d)

				a := uint8(clamp255(math.Round(intensity * o.opacity * 255)))
				if a == 0 {
					continue
				}
				j := (y*w + x) * 4
				data[j+0] = 255
				data[j+1] = 255
				data[j+2] = 255
				data[j+3] = a
			}
		}
	})

	Logger().Debug("specular map rendered",
		"width", w, "height", h, "segments", segments)
	return pm
}

// edgeCoverage converts the signed distance at the shape's outer edge to a
// Hermite-smoothed coverage value: 1 well inside, 0 well outside.
func edgeCoverage(sdf float64) float64 {
	if sdf >= specularEdgeAA {
		return 0
	}
	if sdf <= -specularEdgeAA {
		return 1
	}
	t := (sdf + specularEdgeAA) / (2 * specularEdgeAA)
	return 1 - t*t*(3-2*t)
}

// rimPolyline tessellates the rounded-rect outline into a closed polyline:
// each corner arc contributes segments+1 points, straight edges are the
// chords between consecutive arcs. Dimensions are in device pixels.
func rimPolyline(w, h, r float64, segments int) []Vec2 {
	// Corner centers and the start angle of each quarter arc, walking
	// clockwise from the top-left corner.
	corners := [4]struct {
		cx, cy, start float64
	}{
		{r, r, math.Pi},              // top-left: 180 -> 270 degrees
		{w - r, r, 3 * math.Pi / 2},  // top-right: 270 -> 360
		{w - r, h - r, 0},            // bottom-right: 0 -> 90
		{r, h - r, math.Pi / 2},      // bottom-left: 90 -> 180
	}

	pts := make([]Vec2, 0, 4*(segments+1))
	for _, c := range corners {
		for k := 0; k <= segments; k++ {
			a := c.start + float64(k)/float64(segments)*(math.Pi/2)
			pts = append(pts, Vec2{
				X: c.cx + r*math.Cos(a),
				Y: c.cy + r*math.Sin(a),
			})
		}
	}
	return pts
}

// nearestOnPolyline returns the closest point on the closed polyline to p
// and the distance to it.
func nearestOnPolyline(pts []Vec2, px, py float64) (Vec2, float64) {
	best := pts[0]
	bestSq := math.MaxFloat64
	p := Vec2{X: px, Y: py}

	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		q := nearestOnSegment(a, b, p)
		dx, dy := p.X-q.X, p.Y-q.Y
		if sq := dx*dx + dy*dy; sq < bestSq {
			bestSq = sq
			best = q
		}
	}
	return best, math.Sqrt(bestSq)
}

// nearestOnSegment projects p onto the segment ab, clamped to the endpoints.
// Zero-length segments are treated as points.
func nearestOnSegment(a, b, p Vec2) Vec2 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return a
	}
	t := clamp01(p.Sub(a).Dot(ab) / den)
	return a.Add(ab.Mul(t))
}
