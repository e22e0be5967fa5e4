package filters

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"heightmap-harvester/internal/grid"
)

// BilateralFilter denoises the grid while preserving edges. Each output pixel
// is the weighted average of its square neighborhood, weighting neighbors by
// both spatial distance and intensity similarity. Neighbors outside the grid
// are skipped rather than clamped, so border pixels average over a smaller
// window. Returns a new grid with the same dimensions as the input.
func BilateralFilter(src *grid.Grid, diameter int, sigmaColor, sigmaSpace float64) (*grid.Grid, error) {
	if err := validateBilateralParams(diameter, sigmaColor, sigmaSpace); err != nil {
		return nil, err
	}
	if err := validateInput(src); err != nil {
		return nil, err
	}

	dst, err := grid.New(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	for y := 0; y < src.Height(); y++ {
		bilateralRow(src, dst, y, diameter, sigmaColor, sigmaSpace)
	}

	return dst, nil
}

// BilateralFilterParallel is BilateralFilter with the row loop spread across
// workers goroutines. Output is bitwise identical to the sequential version
// because rows are independent and each worker writes only its own rows.
func BilateralFilterParallel(ctx context.Context, src *grid.Grid, diameter int, sigmaColor, sigmaSpace float64, workers int) (*grid.Grid, error) {
	if err := validateBilateralParams(diameter, sigmaColor, sigmaSpace); err != nil {
		return nil, err
	}
	if err := validateInput(src); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > src.Height() {
		workers = src.Height()
	}
	if workers == 1 {
		return BilateralFilter(src, diameter, sigmaColor, sigmaSpace)
	}

	dst, err := grid.New(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)

	rowsPerWorker := (src.Height() + workers - 1) / workers
	for start := 0; start < src.Height(); start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > src.Height() {
			end = src.Height()
		}

		start, end := start, end
		g.Go(func() error {
			for y := start; y < end; y++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				bilateralRow(src, dst, y, diameter, sigmaColor, sigmaSpace)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dst, nil
}

// bilateralRow computes one output row. The center pixel always contributes
// weight 1, so the weight sum can never reach zero.
func bilateralRow(src, dst *grid.Grid, y, diameter int, sigmaColor, sigmaSpace float64) {
	width := src.Width()
	height := src.Height()
	half := diameter / 2

	twoSigmaColorSq := 2 * sigmaColor * sigmaColor
	twoSigmaSpaceSq := 2 * sigmaSpace * sigmaSpace

	for x := 0; x < width; x++ {
		center := float64(src.At(y, x))

		var weightSum, valueSum float64
		for dy := -half; dy <= half; dy++ {
			ny := y + dy
			if ny < 0 || ny >= height {
				continue
			}
			for dx := -half; dx <= half; dx++ {
				nx := x + dx
				if nx < 0 || nx >= width {
					continue
				}

				neighbor := float64(src.At(ny, nx))
				spatial := float64(dy*dy + dx*dx)
				intensity := neighbor - center

				weight := math.Exp(-(spatial/twoSigmaSpaceSq + intensity*intensity/twoSigmaColorSq))
				weightSum += weight
				valueSum += weight * neighbor
			}
		}

		dst.Set(y, x, uint8(math.Round(valueSum/weightSum)))
	}
}

func validateBilateralParams(diameter int, sigmaColor, sigmaSpace float64) error {
	if diameter < 1 {
		return NewConfigurationError("diameter", diameter, "must be positive")
	}
	if diameter%2 == 0 {
		return NewConfigurationError("diameter", diameter, "must be odd")
	}
	if sigmaColor <= 0 {
		return NewConfigurationError("sigma_color", sigmaColor, "must be positive")
	}
	if sigmaSpace <= 0 {
		return NewConfigurationError("sigma_space", sigmaSpace, "must be positive")
	}
	return nil
}
