package liquidglass

import "math"

// BezelProfile maps a normalized penetration depth (0 = outer edge of the
// bevel band, 1 = start of the flat interior) to a normalized surface height
// fraction in [0, 1]. Profiles must satisfy f(0) = 0 and f(1) = 1; the
// engine imposes no further constraint, so non-monotonic curves are allowed.
type BezelProfile func(t float64) float64

// ProfileConvex is a quarter-circle bulge: the surface rises steeply at the
// rim and flattens toward the interior, the classic lens-edge look.
func ProfileConvex(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return math.Sqrt(1 - u*u)
}

// ProfileConcave is the complement of ProfileConvex: the surface stays low
// across most of the band and sweeps up just before the flat interior.
func ProfileConcave(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Sqrt(1-t*t)
}

// ProfileLip is a convex rise with a dip before the interior, producing a
// meniscus look. The curve is non-monotonic: it climbs past the eventual
// interior level, sinks, and returns to 1 at t = 1.
func ProfileLip(t float64) float64 {
	t = clamp01(t)
	s := math.Sin(math.Pi * t)
	return clamp01(ProfileConvex(t) - 0.3*s*s*s*s)
}

// ProfileByName resolves one of the built-in profiles by its configuration
// name ("convex", "concave" or "lip"). Returns false for unknown names.
func ProfileByName(name string) (BezelProfile, bool) {
	switch name {
	case "convex":
		return ProfileConvex, true
	case "concave":
		return ProfileConcave, true
	case "lip":
		return ProfileLip, true
	}
	return nil, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
