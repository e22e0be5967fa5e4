package export

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heightmap-harvester/internal/grid"
)

func testHeights(t *testing.T) *grid.FloatGrid {
	t.Helper()
	heights, err := grid.NewFloat(3, 2)
	require.NoError(t, err)

	values := [][]float32{
		{0, 10.5, 20},
		{5, 15, 30},
	}
	for y, row := range values {
		for x, v := range row {
			heights.Set(y, x, v)
		}
	}
	return heights
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"stl", "r32", "raw", "png"} {
		exporter, err := ForFormat(format)
		require.NoError(t, err, format)
		assert.NotNil(t, exporter)
	}

	_, err := ForFormat("obj")
	require.Error(t, err)
}

func TestRawExporter_RoundTrip(t *testing.T) {
	heights := testHeights(t)

	var buf bytes.Buffer
	require.NoError(t, (&RawExporter{}).Write(&buf, heights))

	require.Equal(t, 4*6, buf.Len())

	decoded := make([]float32, 6)
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, decoded))
	assert.Equal(t, heights.Data(), decoded)
}

func TestSTLExporter_BinaryLayout(t *testing.T) {
	heights := testHeights(t)

	var buf bytes.Buffer
	require.NoError(t, (&STLExporter{}).Write(&buf, heights))

	// 2 cells * 2 triangles, 50 bytes each, after the 80-byte header and
	// the 4-byte triangle count.
	wantTriangles := uint32(4)
	require.Equal(t, 84+50*int(wantTriangles), buf.Len())

	var count uint32
	require.NoError(t, binary.Read(bytes.NewReader(buf.Bytes()[80:84]), binary.LittleEndian, &count))
	assert.Equal(t, wantTriangles, count)

	// First triangle normal must be unit length.
	var normal [3]float32
	require.NoError(t, binary.Read(bytes.NewReader(buf.Bytes()[84:96]), binary.LittleEndian, &normal))
	length := math.Sqrt(float64(normal[0]*normal[0] + normal[1]*normal[1] + normal[2]*normal[2]))
	assert.InDelta(t, 1.0, length, 1e-5)
}

func TestSTLExporter_RejectsTinyGrids(t *testing.T) {
	heights, err := grid.NewFloat(1, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.Error(t, (&STLExporter{}).Write(&buf, heights))
}

func TestPNGExporter_NormalizedPreview(t *testing.T) {
	heights := testHeights(t)

	var buf bytes.Buffer
	require.NoError(t, (&PNGExporter{}).Write(&buf, heights))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())

	// Min height maps to black, max to white.
	minR, _, _, _ := img.At(0, 0).RGBA()
	maxR, _, _, _ := img.At(2, 1).RGBA()
	assert.Equal(t, uint32(0), minR)
	assert.Equal(t, uint32(65535), maxR)
}

func TestPNGExporter_FlatGrid(t *testing.T) {
	heights, err := grid.NewFloat(2, 2)
	require.NoError(t, err)
	for i := range heights.Data() {
		heights.Data()[i] = 7.5
	}

	var buf bytes.Buffer
	require.NoError(t, (&PNGExporter{}).Write(&buf, heights))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
}
