package grid

import (
	"fmt"
)

// Grid is a row-major 2-D array of 8-bit intensity samples. The zero value is
// not usable; construct grids with New or FromRows.
type Grid struct {
	width  int
	height int
	pix    []uint8
}

// New creates a zero-filled intensity grid of the given dimensions.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}

	return &Grid{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}, nil
}

// FromRows builds a grid from row slices. All rows must share the same
// non-zero length.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty row data")
	}

	width := len(rows[0])
	g, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("ragged row %d: got %d samples, want %d", y, len(row), width)
		}
		copy(g.pix[y*width:(y+1)*width], row)
	}

	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the sample at row y, column x. Indices must be in bounds.
func (g *Grid) At(y, x int) uint8 {
	return g.pix[y*g.width+x]
}

// Set stores a sample at row y, column x.
func (g *Grid) Set(y, x int, v uint8) {
	g.pix[y*g.width+x] = v
}

// Row returns the backing slice for row y. The slice aliases grid storage.
func (g *Grid) Row(y int) []uint8 {
	return g.pix[y*g.width : (y+1)*g.width]
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	pix := make([]uint8, len(g.pix))
	copy(pix, g.pix)
	return &Grid{width: g.width, height: g.height, pix: pix}
}

// Fill sets every sample to v.
func (g *Grid) Fill(v uint8) {
	for i := range g.pix {
		g.pix[i] = v
	}
}

// Pix returns the row-major backing storage.
func (g *Grid) Pix() []uint8 {
	return g.pix
}

// FloatGrid is a row-major 2-D array of float32 height samples produced by
// the resample stage.
type FloatGrid struct {
	width  int
	height int
	data   []float32
}

// NewFloat creates a zero-filled float grid of the given dimensions.
func NewFloat(width, height int) (*FloatGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}

	return &FloatGrid{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}, nil
}

func (f *FloatGrid) Width() int  { return f.width }
func (f *FloatGrid) Height() int { return f.height }

// At returns the height at row y, column x. Indices must be in bounds.
func (f *FloatGrid) At(y, x int) float32 {
	return f.data[y*f.width+x]
}

// Set stores a height at row y, column x.
func (f *FloatGrid) Set(y, x int, v float32) {
	f.data[y*f.width+x] = v
}

// Row returns the backing slice for row y. The slice aliases grid storage.
func (f *FloatGrid) Row(y int) []float32 {
	return f.data[y*f.width : (y+1)*f.width]
}

// Data returns the row-major backing storage.
func (f *FloatGrid) Data() []float32 {
	return f.data
}

// Clone returns an independent copy of the grid.
func (f *FloatGrid) Clone() *FloatGrid {
	data := make([]float32, len(f.data))
	copy(data, f.data)
	return &FloatGrid{width: f.width, height: f.height, data: data}
}
