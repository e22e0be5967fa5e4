package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"heightmap-harvester/internal/grid"
)

// SourceImage is a decoded input held by the coordinator.
type SourceImage struct {
	Grid   *grid.Grid
	Width  int
	Height int
	Format string
}

// Loader decodes image files into intensity grids. Color sources are reduced
// to Rec. 601 luminance; the pipeline itself stays single-channel.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) LoadImage(reader io.Reader) (*SourceImage, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	g, err := grayGrid(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to intensity grid: %w", err)
	}

	return &SourceImage{
		Grid:   g,
		Width:  g.Width(),
		Height: g.Height(),
		Format: format,
	}, nil
}

func grayGrid(img image.Image) (*grid.Grid, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	if src, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			copy(g.Row(y), src.Pix[y*src.Stride:y*src.Stride+width])
		}
		return g, nil
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, gr, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luma := (0.299*float64(r) + 0.587*float64(gr) + 0.114*float64(b)) / 257.0
			g.Set(y, x, uint8(luma+0.5))
		}
	}

	return g, nil
}
