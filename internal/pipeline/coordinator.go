package pipeline

import (
	"context"
	"fmt"
	"io"
	"sync"

	"heightmap-harvester/internal/export"
	"heightmap-harvester/internal/grid"
	"heightmap-harvester/internal/heightmap"
	"heightmap-harvester/internal/logger"
)

// Coordinator owns the load, generate and export sequence. It keeps the
// decoded source and the generated heights behind a lock so callers can load
// and export from different goroutines.
type Coordinator struct {
	mu      sync.RWMutex
	logger  logger.Logger
	loader  *Loader
	source  *SourceImage
	heights *grid.FloatGrid
}

func NewCoordinator(log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.Nop{}
	}

	return &Coordinator{
		logger: log,
		loader: NewLoader(),
	}
}

// LoadImage decodes an image stream and stores it as the current source.
func (c *Coordinator) LoadImage(reader io.Reader) (*SourceImage, error) {
	source, err := c.loader.LoadImage(reader)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.source = source
	c.heights = nil
	c.mu.Unlock()

	c.logger.Info("pipeline", "image loaded", map[string]interface{}{
		"width":  source.Width,
		"height": source.Height,
		"format": source.Format,
	})

	return source, nil
}

// Generate runs the height-map pipeline over the loaded source.
func (c *Coordinator) Generate(ctx context.Context, opts heightmap.Options, scaleFactor float64, outWidth, outHeight int) (*grid.FloatGrid, error) {
	c.mu.RLock()
	source := c.source
	c.mu.RUnlock()

	if source == nil {
		return nil, fmt.Errorf("no image loaded")
	}

	gen := heightmap.NewGenerator(c.logger, opts)
	heights, err := gen.Generate(ctx, source.Grid, scaleFactor, outWidth, outHeight)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.heights = heights
	c.mu.Unlock()

	return heights, nil
}

// Export writes the generated heights in the named format.
func (c *Coordinator) Export(writer io.Writer, format string) error {
	c.mu.RLock()
	heights := c.heights
	c.mu.RUnlock()

	if heights == nil {
		return fmt.Errorf("no height grid generated")
	}

	exporter, err := export.ForFormat(format)
	if err != nil {
		return err
	}

	if err := exporter.Write(writer, heights); err != nil {
		return fmt.Errorf("export as %s failed: %w", format, err)
	}

	c.logger.Info("pipeline", "height grid exported", map[string]interface{}{
		"format":  format,
		"samples": heights.Width() * heights.Height(),
	})

	return nil
}

// GetSource returns the currently loaded source image.
func (c *Coordinator) GetSource() *SourceImage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// GetHeights returns the most recently generated height grid.
func (c *Coordinator) GetHeights() *grid.FloatGrid {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.heights
}
