package filters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heightmap-harvester/internal/grid"
)

func TestGaussianBlur_PreservesShape(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {4, 7}} {
		src, err := grid.New(size[0], size[1])
		require.NoError(t, err)

		dst, err := GaussianBlur(src)
		require.NoError(t, err)
		assert.Equal(t, size[0], dst.Width())
		assert.Equal(t, size[1], dst.Height())
	}
}

// A uniform grid must come back unchanged: the kernel sums to the divisor, so
// the replicate-edge border introduces no artifacts on flat input.
func TestGaussianBlur_UniformIdempotent(t *testing.T) {
	for _, v := range []uint8{0, 7, 128, 255} {
		src, err := grid.New(5, 5)
		require.NoError(t, err)
		src.Fill(v)

		dst, err := GaussianBlur(src)
		require.NoError(t, err)

		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				require.Equal(t, v, dst.At(y, x), "value %d at (%d,%d)", v, y, x)
			}
		}
	}
}

// An impulse of 16 spreads into the kernel itself once divided by 16.
func TestGaussianBlur_ImpulseResponse(t *testing.T) {
	src, err := grid.FromRows([][]uint8{
		{0, 0, 0},
		{0, 16, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	dst, err := GaussianBlur(src)
	require.NoError(t, err)

	want := [][]uint8{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	}
	for y, row := range want {
		for x, v := range row {
			assert.Equal(t, v, dst.At(y, x), "pixel (%d,%d)", y, x)
		}
	}
}

// Horizontal ramp with replicate-edge borders and truncating division.
func TestGaussianBlur_RampBorders(t *testing.T) {
	src, err := grid.FromRows([][]uint8{
		{10, 20, 30},
		{10, 20, 30},
		{10, 20, 30},
	})
	require.NoError(t, err)

	dst, err := GaussianBlur(src)
	require.NoError(t, err)

	want := [][]uint8{
		{12, 20, 27},
		{12, 20, 27},
		{12, 20, 27},
	}
	for y, row := range want {
		for x, v := range row {
			assert.Equal(t, v, dst.At(y, x), "pixel (%d,%d)", y, x)
		}
	}
}

func TestGaussianBlur_NilInput(t *testing.T) {
	_, err := GaussianBlur(nil)
	require.Error(t, err)

	var degErr *DegenerateInputError
	assert.True(t, errors.As(err, &degErr))
}
