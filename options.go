package liquidglass

// Option configures a computation during a single call. Every entry point
// accepts options; options that do not apply to a given stage are ignored.
//
// Example:
//
//	// Single-threaded, deterministic profile run
//	pm, maxDisp, err := liquidglass.ComputeDisplacement(geo, cfg,
//	    liquidglass.WithWorkers(1))
//
//	// Specular highlight lit from the upper left
//	spec := liquidglass.ComputeSpecular(240, 160, 40, 50, 2,
//	    liquidglass.WithLightDirection(liquidglass.V2(-0.5, -0.7)))
type Option func(*options)

// options holds optional per-call configuration.
type options struct {
	workers  int
	light    Vec3
	hasLight bool
	falloff  float64
	rimWidth float64
	opacity  float64
}

// defaultOptions returns the default per-call options.
func defaultOptions() options {
	return options{
		falloff: defaultSpecularFalloff,
		opacity: 1,
	}
}

// applyOptions resolves a variadic option list against the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// WithWorkers sets how many goroutines row-parallel stages use.
// Zero or negative selects GOMAXPROCS. The result is identical for any
// worker count; this only trades latency for CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLightDirection overrides the virtual light used by the specular
// renderer. The vector is the in-page direction the light shines from
// (negative Y is from above); the out-of-page component toward the viewer is
// fixed, and the result is normalized.
func WithLightDirection(v Vec2) Option {
	return func(o *options) {
		o.light = Vec3{X: v.X, Y: v.Y, Z: defaultLightZ}.Normalize()
		o.hasLight = true
	}
}

// WithFalloff sets the specular falloff exponent. Higher values keep the
// highlight narrower. Values below 1 are clamped to 1.
func WithFalloff(exp float64) Option {
	return func(o *options) {
		if exp < 1 {
			exp = 1
		}
		o.falloff = exp
	}
}

// WithRimWidth sets the width of the specular highlight band in CSS pixels.
// Zero or negative restores the default, which scales with the corner
// radius.
func WithRimWidth(w float64) Option {
	return func(o *options) {
		o.rimWidth = w
	}
}

// WithHighlightOpacity scales the specular alpha channel, clamped to [0, 1].
// The default is 1; compositors that apply opacity downstream should leave
// this alone.
func WithHighlightOpacity(a float64) Option {
	return func(o *options) {
		o.opacity = clamp01(a)
	}
}
