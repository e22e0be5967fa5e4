package export

import (
	"bufio"
	"encoding/binary"
	"io"

	"heightmap-harvester/internal/grid"
)

// RawExporter writes the height grid as row-major little-endian float32
// samples (the common .r32 heightmap interchange layout).
type RawExporter struct{}

func (e *RawExporter) Format() string {
	return "r32"
}

func (e *RawExporter) Write(w io.Writer, heights *grid.FloatGrid) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, heights.Data()); err != nil {
		return err
	}

	return bw.Flush()
}
