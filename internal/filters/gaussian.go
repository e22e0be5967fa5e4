package filters

import (
	"heightmap-harvester/internal/grid"
)

// gaussianKernel is the fixed 3x3 binomial kernel with divisor 16.
var gaussianKernel = [3][3]int{
	{1, 2, 1},
	{2, 4, 2},
	{1, 2, 1},
}

// GaussianBlur applies the fixed 3x3 kernel with replicate-edge borders:
// out-of-range indices are clamped to the nearest valid row or column. This
// differs from the bilateral filter's skip policy on purpose; the unsharp
// mask's residual depends on the clamped blur. The normalized sum uses
// truncating integer division. Returns a new grid with the same dimensions.
func GaussianBlur(src *grid.Grid) (*grid.Grid, error) {
	if err := validateInput(src); err != nil {
		return nil, err
	}

	width := src.Width()
	height := src.Height()

	dst, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				ny := clampIndex(y+dy, height)
				for dx := -1; dx <= 1; dx++ {
					nx := clampIndex(x+dx, width)
					sum += gaussianKernel[dy+1][dx+1] * int(src.At(ny, nx))
				}
			}
			dst.Set(y, x, uint8(sum/16))
		}
	}

	return dst, nil
}

func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
