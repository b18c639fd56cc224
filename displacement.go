package liquidglass

import "math"

// EncodeDisplacement quantizes a displacement field into an RGBA8 pixel
// buffer using the mid-gray-centered convention: 128 encodes zero offset,
// R carries dx and G carries dy, each scaled by the field's maximum
// magnitude. B is 0 and A is 255 everywhere.
//
// The returned scalar is the field's maximum displacement; a consumer
// recovers signed offsets as (channel-128)/127 * max. When the field is
// degenerate (max == 0) every pixel encodes exactly (128, 128) and the
// consumer should treat the filter as a no-op.
func EncodeDisplacement(df *DisplacementField) (*Pixmap, float64) {
	pm := NewPixmap(df.width, df.height)
	data := pm.Data()

	if df.max == 0 {
		for i := 0; i < len(data); i += 4 {
			data[i+0] = 128
			data[i+1] = 128
			data[i+3] = 255
		}
		return pm, 0
	}

	scale := 127 / df.max
	for i := range df.dx {
		j := i * 4
		data[j+0] = uint8(clamp255(math.Round(128 + df.dx[i]*scale)))
		data[j+1] = uint8(clamp255(math.Round(128 + df.dy[i]*scale)))
		data[j+3] = 255
	}
	return pm, df.max
}

// DecodeDisplacement recovers the signed displacement vector encoded at a
// pixel of a displacement map, up to 8-bit quantization. The inverse of
// EncodeDisplacement.
func DecodeDisplacement(pm *Pixmap, maxDisplacement float64, x, y int) Vec2 {
	if maxDisplacement == 0 || x < 0 || x >= pm.width || y < 0 || y >= pm.height {
		return Vec2{}
	}
	i := (y*pm.width + x) * 4
	return Vec2{
		X: (float64(pm.data[i+0]) - 128) / 127 * maxDisplacement,
		Y: (float64(pm.data[i+1]) - 128) / 127 * maxDisplacement,
	}
}

// ComputeDisplacement runs the full displacement pipeline: height field,
// normal estimation, refraction, and encoding. It returns the encoded map
// and the maximum displacement magnitude for downstream normalization.
//
// The computation is a pure function of its inputs. Invalid geometry is
// clamped (see Geometry.Normalize); an invalid refractive index returns
// ErrRefractiveIndex. A zero-area canvas yields an empty (0x0) buffer.
func ComputeDisplacement(geo Geometry, cfg OpticalConfig, opts ...Option) (*Pixmap, float64, error) {
	cfg = cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, 0, err
	}

	hf := BuildHeightField(geo, cfg, opts...)
	nf := EstimateNormals(hf, opts...)
	df, err := SimulateRefraction(geo, hf, nf, cfg.RefractiveIndex, opts...)
	if err != nil {
		return nil, 0, err
	}
	pm, maxDisp := EncodeDisplacement(df)

	Logger().Debug("displacement map encoded",
		"width", pm.Width(), "height", pm.Height(), "max_displacement", maxDisp)
	return pm, maxDisp, nil
}
