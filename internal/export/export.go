package export

import (
	"fmt"
	"io"

	"heightmap-harvester/internal/grid"
)

// Exporter writes a height grid in one output format.
type Exporter interface {
	Write(w io.Writer, heights *grid.FloatGrid) error
	Format() string
}

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "stl":
		return &STLExporter{}, nil
	case "r32", "raw":
		return &RawExporter{}, nil
	case "png":
		return &PNGExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q (want stl, r32 or png)", format)
	}
}
