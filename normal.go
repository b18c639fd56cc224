package liquidglass

import (
	"math"

	"github.com/glassfx/liquidglass/internal/parallel"
)

// NormalField is a dense grid of unit surface normals, one per device pixel,
// derived from the height field's local slope. At the flat interior the
// normal is (0, 0, 1): straight up, which is what makes the glass visually
// transparent away from the bevel.
type NormalField struct {
	width  int
	height int
	nx     []float64
	ny     []float64
	nz     []float64
}

// Width returns the width of the field in device pixels.
func (f *NormalField) Width() int {
	return f.width
}

// Height returns the height of the field in device pixels.
func (f *NormalField) Height() int {
	return f.height
}

// At returns the unit normal at the given device pixel.
// Out-of-range coordinates return the up vector.
func (f *NormalField) At(x, y int) Vec3 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Vec3{Z: 1}
	}
	i := y*f.width + x
	return Vec3{X: f.nx[i], Y: f.ny[i], Z: f.nz[i]}
}

// EstimateNormals computes per-pixel surface normals from the height field
// using central finite differences (one-sided at the grid border), with a
// one-device-pixel step. The normal is the normalized (-dh/dx, -dh/dy, 1).
func EstimateNormals(hf *HeightField, opts ...Option) *NormalField {
	o := applyOptions(opts)
	w, h := hf.width, hf.height
	f := &NormalField{width: w, height: h}
	if w <= 0 || h <= 0 {
		return f
	}
	f.nx = make([]float64, w*h)
	f.ny = make([]float64, w*h)
	f.nz = make([]float64, w*h)

	parallel.Rows(h, o.workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			yLo, yHi := y-1, y+1
			if yLo < 0 {
				yLo = 0
			}
			if yHi > h-1 {
				yHi = h - 1
			}
			stepY := float64(yHi - yLo)

			for x := 0; x < w; x++ {
				xLo, xHi := x-1, x+1
				if xLo < 0 {
					xLo = 0
				}
				if xHi > w-1 {
					xHi = w - 1
				}
				stepX := float64(xHi - xLo)

				var dhdx, dhdy float64
				if stepX > 0 {
					dhdx = (hf.atClamped(xHi, y) - hf.atClamped(xLo, y)) / stepX
				}
				if stepY > 0 {
					dhdy = (hf.atClamped(x, yHi) - hf.atClamped(x, yLo)) / stepY
				}

				i := y*w + x
				if dhdx == 0 && dhdy == 0 {
					f.nz[i] = 1
					continue
				}
				inv := 1 / math.Sqrt(dhdx*dhdx+dhdy*dhdy+1)
				f.nx[i] = -dhdx * inv
				f.ny[i] = -dhdy * inv
				f.nz[i] = inv
			}
		}
	})

	return f
}
