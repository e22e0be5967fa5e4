package heightmap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heightmap-harvester/internal/filters"
	"heightmap-harvester/internal/grid"
	"heightmap-harvester/internal/logger"
)

func referenceGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows([][]uint8{
		{10, 20, 30, 40, 50},
		{15, 25, 35, 45, 55},
		{20, 30, 40, 50, 60},
		{25, 35, 45, 55, 65},
		{30, 40, 50, 60, 70},
	})
	require.NoError(t, err)
	return g
}

// Regression fixture: the 5x5 reference grid through the default pipeline
// (diameter 5, sigmaColor 25, sigmaSpace 5, amount 1.5) at scale 13.25.
func TestGenerate_GoldenReference(t *testing.T) {
	heights, err := Generate(referenceGrid(t), 13.25, 5, 5)
	require.NoError(t, err)

	want := [][]float32{
		{291.5, 371.0, 424.0, 530.0, 622.75},
		{318.0, 410.75, 503.5, 583.0, 689.0},
		{357.75, 450.5, 530.0, 609.5, 728.75},
		{397.5, 490.25, 569.75, 649.25, 768.5},
		{450.5, 543.25, 662.5, 702.25, 795.0},
	}

	require.Equal(t, 5, heights.Width())
	require.Equal(t, 5, heights.Height())
	for y, row := range want {
		for x, v := range row {
			assert.InDelta(t, v, heights.At(y, x), 1e-3, "pixel (%d,%d)", y, x)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(referenceGrid(t), 13.25, 5, 5)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := Generate(referenceGrid(t), 13.25, 5, 5)
		require.NoError(t, err)
		require.Equal(t, first.Data(), again.Data(), "run %d", i)
	}
}

func TestGenerate_OutputSizingDecoupled(t *testing.T) {
	heights, err := Generate(referenceGrid(t), 1.0, 12, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, heights.Width())
	assert.Equal(t, 3, heights.Height())
}

func TestGenerator_ParallelMatchesDefaults(t *testing.T) {
	src, err := grid.New(40, 25)
	require.NoError(t, err)
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			src.Set(y, x, uint8((x*7+y*13)%256))
		}
	}

	sequentialOpts := DefaultOptions()
	sequentialOpts.Workers = 1
	sequential, err := NewGenerator(logger.Nop{}, sequentialOpts).
		Generate(context.Background(), src, 2.5, 40, 25)
	require.NoError(t, err)

	parallelOpts := DefaultOptions()
	parallelOpts.Workers = 8
	parallel, err := NewGenerator(logger.Nop{}, parallelOpts).
		Generate(context.Background(), src, 2.5, 40, 25)
	require.NoError(t, err)

	require.Equal(t, sequential.Data(), parallel.Data())
}

func TestGenerator_InvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Diameter = 4

	gen := NewGenerator(logger.Nop{}, opts)
	_, err := gen.Generate(context.Background(), referenceGrid(t), 1.0, 5, 5)
	require.Error(t, err)

	var confErr *filters.ConfigurationError
	assert.True(t, errors.As(err, &confErr), "want ConfigurationError, got %v", err)
}

func TestGenerator_InvalidOutputDimensions(t *testing.T) {
	gen := NewGenerator(logger.Nop{}, DefaultOptions())

	_, err := gen.Generate(context.Background(), referenceGrid(t), 1.0, 0, 5)
	require.Error(t, err)

	var confErr *filters.ConfigurationError
	assert.True(t, errors.As(err, &confErr))
}

func TestGenerator_NilInput(t *testing.T) {
	gen := NewGenerator(logger.Nop{}, DefaultOptions())

	_, err := gen.Generate(context.Background(), nil, 1.0, 5, 5)
	require.Error(t, err)

	var degErr *filters.DegenerateInputError
	assert.True(t, errors.As(err, &degErr))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 5, opts.Diameter)
	assert.Equal(t, 25.0, opts.SigmaColor)
	assert.Equal(t, 5.0, opts.SigmaSpace)
	assert.Equal(t, 1.5, opts.Amount)
}
