package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"heightmap-harvester/internal/grid"
)

// STLExporter writes the height grid as a binary STL terrain mesh. Each grid
// cell becomes two triangles; x and y are sample coordinates and z is the
// height value.
type STLExporter struct{}

func (e *STLExporter) Format() string {
	return "stl"
}

func (e *STLExporter) Write(w io.Writer, heights *grid.FloatGrid) error {
	width := heights.Width()
	height := heights.Height()

	if width < 2 || height < 2 {
		return fmt.Errorf("mesh export needs at least a 2x2 grid, got %dx%d", width, height)
	}

	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], "heightmap-harvester terrain mesh")
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	triangleCount := uint32(2 * (width - 1) * (height - 1))
	if err := binary.Write(bw, binary.LittleEndian, triangleCount); err != nil {
		return err
	}

	vertex := func(y, x int) [3]float32 {
		return [3]float32{float32(x), float32(y), heights.At(y, x)}
	}

	for y := 0; y < height-1; y++ {
		for x := 0; x < width-1; x++ {
			topLeft := vertex(y, x)
			topRight := vertex(y, x+1)
			bottomLeft := vertex(y+1, x)
			bottomRight := vertex(y+1, x+1)

			if err := writeTriangle(bw, topLeft, bottomLeft, topRight); err != nil {
				return err
			}
			if err := writeTriangle(bw, topRight, bottomLeft, bottomRight); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func writeTriangle(w io.Writer, a, b, c [3]float32) error {
	normal := surfaceNormal(a, b, c)

	for _, vec := range [][3]float32{normal, a, b, c} {
		if err := binary.Write(w, binary.LittleEndian, vec); err != nil {
			return err
		}
	}

	// attribute byte count
	return binary.Write(w, binary.LittleEndian, uint16(0))
}

func surfaceNormal(a, b, c [3]float32) [3]float32 {
	ux := float64(b[0] - a[0])
	uy := float64(b[1] - a[1])
	uz := float64(b[2] - a[2])
	vx := float64(c[0] - a[0])
	vy := float64(c[1] - a[1])
	vz := float64(c[2] - a[2])

	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx

	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if length == 0 {
		return [3]float32{0, 0, 1}
	}

	return [3]float32{
		float32(nx / length),
		float32(ny / length),
		float32(nz / length),
	}
}
