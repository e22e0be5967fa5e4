package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heightmap-harvester/internal/grid"
)

func TestSummarize(t *testing.T) {
	heights, err := grid.NewFloat(2, 2)
	require.NoError(t, err)
	for i, v := range []float32{2, 4, 6, 8} {
		heights.Data()[i] = v
	}

	s := Summarize(heights)

	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 8.0, s.Max)
	assert.Equal(t, 5.0, s.Mean)
	assert.Equal(t, 6.0, s.Relief)
	assert.InDelta(t, math.Sqrt(20.0/3.0), s.StdDev, 1e-9)
}

func TestSummarize_SingleSample(t *testing.T) {
	heights, err := grid.NewFloat(1, 1)
	require.NoError(t, err)
	heights.Set(0, 0, 42)

	s := Summarize(heights)
	assert.Equal(t, 42.0, s.Min)
	assert.Equal(t, 42.0, s.Max)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 0.0, s.Relief)
}

func TestSummary_Fields(t *testing.T) {
	s := Summary{Min: 1, Max: 3, Mean: 2, StdDev: 0.5, Relief: 2}

	fields := s.Fields()
	assert.Equal(t, 1.0, fields["min"])
	assert.Equal(t, 3.0, fields["max"])
	assert.Equal(t, 2.0, fields["relief"])
}
