package liquidglass

import (
	"math"
	"testing"
)

// scenarioGeometry is the shared fixture used across pipeline tests: a
// 70x40 slab with 20px corners and a 16px bevel, canvas fitted exactly.
func scenarioGeometry() Geometry {
	return Geometry{
		ObjectWidth:  70,
		ObjectHeight: 40,
		Radius:       20,
		BezelWidth:   16,
		CanvasWidth:  70,
		CanvasHeight: 40,
		DPR:          1,
	}
}

// scenarioConfig pairs scenarioGeometry with an 80px-thick convex slab at
// the default glass index.
func scenarioConfig() OpticalConfig {
	cfg := DefaultOpticalConfig()
	cfg.GlassThickness = 80
	cfg.RefractiveIndex = 1.5
	cfg.BezelHeight = ProfileConvex
	return cfg
}

func TestBuildHeightFieldDimensions(t *testing.T) {
	geo := Geometry{ObjectWidth: 70, ObjectHeight: 40, Radius: 20, BezelWidth: 16, CanvasWidth: 90, CanvasHeight: 60, DPR: 2}
	hf := BuildHeightField(geo, scenarioConfig())
	if hf.Width() != 180 || hf.Height() != 120 {
		t.Errorf("dimensions = %dx%d, want 180x120", hf.Width(), hf.Height())
	}
}

func TestBuildHeightFieldZeroArea(t *testing.T) {
	hf := BuildHeightField(Geometry{}, scenarioConfig())
	if hf.Width() != 0 || hf.Height() != 0 {
		t.Errorf("dimensions = %dx%d, want 0x0", hf.Width(), hf.Height())
	}
	if got := hf.At(0, 0); got != 0 {
		t.Errorf("At on empty field = %v, want 0", got)
	}
}

func TestBuildHeightFieldValues(t *testing.T) {
	geo := scenarioGeometry()
	cfg := scenarioConfig()
	hf := BuildHeightField(geo, cfg)

	// Outside the footprint: the canvas corner is past the rounded corner.
	if got := hf.At(0, 0); got != 0 {
		t.Errorf("height at canvas corner = %v, want 0", got)
	}

	// Flat interior: full thickness.
	if got := hf.At(35, 20); got != 80 {
		t.Errorf("height at center = %v, want 80", got)
	}

	// Bevel band: profile height at the sampled penetration.
	pen, inside := geo.Penetration(2.5, 20.5)
	if !inside || pen <= 0 || pen >= 1 {
		t.Fatalf("fixture pixel not in band: pen=%v inside=%v", pen, inside)
	}
	want := cfg.GlassThickness * ProfileConvex(pen)
	if got := hf.At(2, 20); math.Abs(got-want) > 1e-9 {
		t.Errorf("height in band = %v, want %v", got, want)
	}
}

func TestBuildHeightFieldRangeInvariant(t *testing.T) {
	geo := scenarioGeometry()
	cfg := scenarioConfig()
	cfg.BezelHeight = ProfileLip
	hf := BuildHeightField(geo, cfg)

	for y := 0; y < hf.Height(); y++ {
		for x := 0; x < hf.Width(); x++ {
			h := hf.At(x, y)
			if h < 0 || h > cfg.GlassThickness {
				t.Fatalf("height at (%d,%d) = %v, out of [0, %v]", x, y, h, cfg.GlassThickness)
			}
		}
	}
}

func TestBuildHeightFieldNegativeThicknessClamped(t *testing.T) {
	cfg := scenarioConfig()
	cfg.GlassThickness = -10
	hf := BuildHeightField(scenarioGeometry(), cfg)
	if got := hf.At(35, 20); got != 0 {
		t.Errorf("height with negative thickness = %v, want 0", got)
	}
}

func TestBuildHeightFieldNilProfileDefaultsConvex(t *testing.T) {
	cfg := scenarioConfig()
	cfg.BezelHeight = nil
	hf := BuildHeightField(scenarioGeometry(), cfg)
	ref := BuildHeightField(scenarioGeometry(), scenarioConfig())
	for y := 0; y < hf.Height(); y++ {
		for x := 0; x < hf.Width(); x++ {
			if hf.At(x, y) != ref.At(x, y) {
				t.Fatalf("nil profile differs from convex at (%d,%d)", x, y)
			}
		}
	}
}

func TestBuildHeightFieldWorkerCountInvariant(t *testing.T) {
	geo := scenarioGeometry()
	cfg := scenarioConfig()
	serial := BuildHeightField(geo, cfg, WithWorkers(1))
	parallel := BuildHeightField(geo, cfg, WithWorkers(8))
	for y := 0; y < serial.Height(); y++ {
		for x := 0; x < serial.Width(); x++ {
			if serial.At(x, y) != parallel.At(x, y) {
				t.Fatalf("worker count changed result at (%d,%d)", x, y)
			}
		}
	}
}
