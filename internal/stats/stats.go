package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"heightmap-harvester/internal/grid"
)

// Summary describes the height distribution of a generated grid.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Relief float64
}

// Summarize computes distribution statistics over every sample of the grid.
func Summarize(heights *grid.FloatGrid) Summary {
	data := make([]float64, len(heights.Data()))
	for i, v := range heights.Data() {
		data[i] = float64(v)
	}

	min := floats.Min(data)
	max := floats.Max(data)
	mean := stat.Mean(data, nil)

	stdDev := 0.0
	if len(data) > 1 {
		stdDev = stat.StdDev(data, nil)
	}

	return Summary{
		Min:    min,
		Max:    max,
		Mean:   mean,
		StdDev: stdDev,
		Relief: max - min,
	}
}

// Fields returns the summary as structured log fields.
func (s Summary) Fields() map[string]interface{} {
	return map[string]interface{}{
		"min":     s.Min,
		"max":     s.Max,
		"mean":    s.Mean,
		"std_dev": s.StdDev,
		"relief":  s.Relief,
	}
}
