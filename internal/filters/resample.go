package filters

import (
	"math"

	"heightmap-harvester/internal/grid"
)

// ResampleAndScale maps the grid onto an output grid of arbitrary dimensions
// with bilinear interpolation and multiplies every sample by scaleFactor,
// producing the final float height grid. Output dimensions are fully
// decoupled from input dimensions. An output dimension of 1 samples source
// coordinate 0 so the degenerate ratio never divides by zero.
func ResampleAndScale(src *grid.Grid, scaleFactor float64, outWidth, outHeight int) (*grid.FloatGrid, error) {
	if outWidth < 1 {
		return nil, NewConfigurationError("output_width", outWidth, "must be positive")
	}
	if outHeight < 1 {
		return nil, NewConfigurationError("output_height", outHeight, "must be positive")
	}
	if err := validateInput(src); err != nil {
		return nil, err
	}

	dst, err := grid.NewFloat(outWidth, outHeight)
	if err != nil {
		return nil, err
	}

	var xRatio, yRatio float64
	if outWidth > 1 {
		xRatio = float64(src.Width()-1) / float64(outWidth-1)
	}
	if outHeight > 1 {
		yRatio = float64(src.Height()-1) / float64(outHeight-1)
	}

	for j := 0; j < outHeight; j++ {
		y := float64(j) * yRatio
		for i := 0; i < outWidth; i++ {
			x := float64(i) * xRatio

			value := BilinearInterpolate(src, x, y)
			dst.Set(j, i, float32(value*scaleFactor))
		}
	}

	return dst, nil
}

// BilinearInterpolate estimates the intensity at fractional coordinates
// (x, y) from the four surrounding samples. Corner indices are clamped at
// the upper bound so coordinates on the last row or column stay in range.
// At exact integer coordinates the source sample is returned exactly.
func BilinearInterpolate(src *grid.Grid, x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := x0 + 1
	y1 := y0 + 1

	if x1 > src.Width()-1 {
		x1 = src.Width() - 1
	}
	if y1 > src.Height()-1 {
		y1 = src.Height() - 1
	}

	dx := x - float64(x0)
	dy := y - float64(y0)

	topLeft := float64(src.At(y0, x0))
	topRight := float64(src.At(y0, x1))
	bottomLeft := float64(src.At(y1, x0))
	bottomRight := float64(src.At(y1, x1))

	top := topLeft + dx*(topRight-topLeft)
	bottom := bottomLeft + dx*(bottomRight-bottomLeft)

	return top + dy*(bottom-top)
}
