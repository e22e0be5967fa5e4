package export

import (
	"image"
	"image/png"
	"io"

	"heightmap-harvester/internal/grid"
)

// PNGExporter writes a 16-bit grayscale preview of the height grid with
// heights normalized onto the full sample range. A flat grid maps to zero.
type PNGExporter struct{}

func (e *PNGExporter) Format() string {
	return "png"
}

func (e *PNGExporter) Write(w io.Writer, heights *grid.FloatGrid) error {
	width := heights.Width()
	height := heights.Height()

	min, max := heightRange(heights)
	span := max - min

	img := image.NewGray16(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := heights.Row(y)
		for x, v := range row {
			var sample uint16
			if span > 0 {
				sample = uint16((float64(v) - min) / span * 65535)
			}
			offset := y*img.Stride + x*2
			img.Pix[offset] = uint8(sample >> 8)
			img.Pix[offset+1] = uint8(sample)
		}
	}

	return png.Encode(w, img)
}

func heightRange(heights *grid.FloatGrid) (float64, float64) {
	data := heights.Data()
	min := float64(data[0])
	max := min

	for _, v := range data[1:] {
		f := float64(v)
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}

	return min, max
}
