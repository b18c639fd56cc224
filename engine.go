package liquidglass

import "sync"

// Maps bundles the two buffers a compositor consumes. The displacement map
// covers the full canvas (including any blur margin) while the specular map
// covers only the object rectangle; both are at device-pixel resolution.
type Maps struct {
	Displacement    *Pixmap
	MaxDisplacement float64
	Specular        *Pixmap
}

// ComputeMaps produces the displacement and specular maps for one parameter
// set, running the two independent pipelines concurrently. Both outputs are
// pure functions of the inputs, so a caller reacting to parameter changes
// can simply discard stale results and keep the latest.
func ComputeMaps(geo Geometry, cfg OpticalConfig, segments int, opts ...Option) (*Maps, error) {
	geo = geo.Normalize()
	cfg = cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var (
		wg   sync.WaitGroup
		spec *Pixmap
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		spec = ComputeSpecular(geo.ObjectWidth, geo.ObjectHeight, geo.Radius, segments, geo.DPR, opts...)
	}()

	disp, maxDisp, err := ComputeDisplacement(geo, cfg, opts...)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return &Maps{
		Displacement:    disp,
		MaxDisplacement: maxDisp,
		Specular:        spec,
	}, nil
}
