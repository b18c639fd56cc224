package liquidglass

import (
	"math"
	"testing"
)

func TestGeometryNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Geometry
		want Geometry
	}{
		{
			"valid passes through",
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 16, CanvasWidth: 90, CanvasHeight: 60, DPR: 2},
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 16, CanvasWidth: 90, CanvasHeight: 60, DPR: 2},
		},
		{
			"radius clamped to half min dimension",
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 50, CanvasWidth: 70, CanvasHeight: 40, DPR: 1},
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, CanvasWidth: 70, CanvasHeight: 40, DPR: 1},
		},
		{
			"bezel clamped to 2r-1",
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 100, CanvasWidth: 70, CanvasHeight: 40, DPR: 1},
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 39, CanvasWidth: 70, CanvasHeight: 40, DPR: 1},
		},
		{
			"negative bezel clamped to zero",
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: -3, CanvasWidth: 70, CanvasHeight: 40, DPR: 1},
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 0, CanvasWidth: 70, CanvasHeight: 40, DPR: 1},
		},
		{
			"negative dimensions become zero",
			Geometry{ObjectWidth: -10, ObjectHeight: -5, Radius: -1, BezelWidth: -1, CanvasWidth: -20, CanvasHeight: -20, DPR: 1},
			Geometry{DPR: 1},
		},
		{
			"canvas raised to object size, dpr defaulted",
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 10, CanvasWidth: 10, CanvasHeight: 10, DPR: 0},
			Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 10, CanvasWidth: 70, CanvasHeight: 40, DPR: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeometryGridSize(t *testing.T) {
	g := Geometry{ObjectWidth: 70, ObjectHeight: 40, CanvasWidth: 90, CanvasHeight: 60, DPR: 2}.Normalize()
	w, h := g.GridSize()
	if w != 180 || h != 120 {
		t.Errorf("GridSize() = %dx%d, want 180x120", w, h)
	}

	empty := Geometry{}.Normalize()
	w, h = empty.GridSize()
	if w != 0 || h != 0 {
		t.Errorf("GridSize() of empty geometry = %dx%d, want 0x0", w, h)
	}
}

func TestGeometrySDF(t *testing.T) {
	g := Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 16, CanvasWidth: 70, CanvasHeight: 40, DPR: 1}

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"center is 20 inside", 35, 20, -20},
		{"left edge midline is on boundary", 0, 20, 0},
		{"outside left", -5, 20, 5},
		{"top edge midline is on boundary", 35, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.SDF(tt.x, tt.y)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SDF(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGeometrySDFCorner(t *testing.T) {
	g := Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, CanvasWidth: 70, CanvasHeight: 40, DPR: 1}

	// The top-left corner circle is centered at (20, 20); distance from the
	// canvas corner to the arc is hypot(20,20) - 20.
	got := g.SDF(0, 0)
	want := math.Hypot(20, 20) - 20
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SDF(0, 0) = %v, want %v", got, want)
	}
}

func TestGeometryPenetration(t *testing.T) {
	g := Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 16, CanvasWidth: 70, CanvasHeight: 40, DPR: 1}

	tests := []struct {
		name       string
		x, y       float64
		wantPen    float64
		wantInside bool
	}{
		{"outside the shape", -5, 20, 0, false},
		{"half a pixel inside", 0.5, 20, 0.5 / 16, true},
		{"interior beyond the band", 30, 20, 1, true},
		{"dead center", 35, 20, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pen, inside := g.Penetration(tt.x, tt.y)
			if inside != tt.wantInside {
				t.Fatalf("Penetration(%v, %v) inside = %v, want %v", tt.x, tt.y, inside, tt.wantInside)
			}
			if math.Abs(pen-tt.wantPen) > 1e-9 {
				t.Errorf("Penetration(%v, %v) = %v, want %v", tt.x, tt.y, pen, tt.wantPen)
			}
		})
	}
}

func TestGeometryPenetrationZeroBezel(t *testing.T) {
	// With no bevel band, every interior pixel is immediately at the flat
	// interior: a hard-edged flat-top slab.
	g := Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 0, CanvasWidth: 70, CanvasHeight: 40, DPR: 1}

	pen, inside := g.Penetration(0.5, 20)
	if !inside || pen != 1 {
		t.Errorf("Penetration just inside hard edge = (%v, %v), want (1, true)", pen, inside)
	}
	pen, inside = g.Penetration(-1, 20)
	if inside || pen != 0 {
		t.Errorf("Penetration outside hard edge = (%v, %v), want (0, false)", pen, inside)
	}
}

func TestGeometryPenetrationDPR(t *testing.T) {
	// Device-pixel coordinates: at DPR 2 the same physical point sits twice
	// as many device pixels inside, but the band is twice as wide too, so
	// penetration is unchanged.
	base := Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 16, CanvasWidth: 70, CanvasHeight: 40, DPR: 1}
	hidpi := base
	hidpi.DPR = 2

	p1, _ := base.Penetration(4, 20)
	p2, _ := hidpi.Penetration(8, 40)
	if math.Abs(p1-p2) > 1e-9 {
		t.Errorf("penetration differs across DPR: %v vs %v", p1, p2)
	}
}
