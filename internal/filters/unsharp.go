package filters

import (
	"fmt"

	"heightmap-harvester/internal/grid"
)

// UnsharpMask sharpens the grid by amplifying its high-frequency residual:
// result = clamp(image + amount*(image - gaussianBlur(image)), 0, 255).
// The amplified residual is truncated to integer precision before the
// saturating clamp; overflow never wraps. amount = 0 returns an unchanged
// copy. Returns a new grid with the same dimensions as the input.
func UnsharpMask(src *grid.Grid, amount float64) (*grid.Grid, error) {
	if amount < 0 {
		return nil, NewConfigurationError("amount", amount, "must be non-negative")
	}
	if err := validateInput(src); err != nil {
		return nil, err
	}

	blurred, err := GaussianBlur(src)
	if err != nil {
		return nil, fmt.Errorf("blur stage failed: %w", err)
	}

	width := src.Width()
	height := src.Height()

	dst, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			original := int(src.At(y, x))
			residual := original - int(blurred.At(y, x))

			value := original + int(amount*float64(residual))
			dst.Set(y, x, clampByte(value))
		}
	}

	return dst, nil
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
