// Package liquidglass synthesizes the pixel buffers behind a "liquid glass"
// refraction effect.
//
// # Overview
//
// liquidglass is a pure CPU engine. Given the footprint of a rounded,
// beveled glass slab it produces two RGBA8 buffers for an image-based
// compositor: a displacement map describing how far each background pixel
// appears to shift when viewed through the glass, and a specular map
// carrying a soft highlight along the bevel rim.
//
// # Quick Start
//
//	import "github.com/glassfx/liquidglass"
//
//	geo := liquidglass.Geometry{
//	    ObjectWidth: 240, ObjectHeight: 160, Radius: 40, BezelWidth: 20,
//	    CanvasWidth: 280, CanvasHeight: 200, DPR: 2,
//	}
//	cfg := liquidglass.DefaultOpticalConfig()
//
//	dispMap, maxDisp, err := liquidglass.ComputeDisplacement(geo, cfg)
//	if err != nil {
//	    // refractive index <= 1 is a caller bug
//	}
//	spec := liquidglass.ComputeSpecular(240, 160, 40, 50, 2)
//
//	_ = dispMap.SavePNG("displacement.png")
//	_ = spec.SavePNG("specular.png")
//
// # Pipeline
//
// The displacement map is produced by a fixed pipeline of pure stages, each
// of which is also exported for standalone use:
//
//   - Geometry: signed distance to the rounded-rect boundary, bevel-band
//     classification (Geometry.SDF, Geometry.Penetration)
//   - BezelProfile: 1-D penetration-to-height curve (ProfileConvex, ...)
//   - BuildHeightField: dense per-device-pixel surface heights
//   - EstimateNormals: finite-difference unit surface normals
//   - SimulateRefraction: vectorized Snell's law and base-plane projection
//   - EncodeDisplacement: mid-gray-centered RGBA quantization
//
// The specular map shares the geometry model but is rendered independently
// by ComputeSpecular; the two outputs can be produced concurrently (see
// ComputeMaps).
//
// # Determinism and Concurrency
//
// Every entry point is a pure function of its inputs: no shared state, no
// I/O, no caching. Stages split work across row bands internally; pass
// WithWorkers to control the parallelism. Results are identical regardless
// of worker count.
//
// # Coordinate System
//
// Lengths are in CSS pixels; DPR scales them to device pixels, which is the
// resolution of every produced buffer. Origin (0,0) is the top-left corner,
// X increases right, Y increases down, and the +Z axis points out of the
// page toward the viewer.
package liquidglass
