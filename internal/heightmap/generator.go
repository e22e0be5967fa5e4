package heightmap

import (
	"context"
	"fmt"

	"heightmap-harvester/internal/chain"
	"heightmap-harvester/internal/filters"
	"heightmap-harvester/internal/grid"
	"heightmap-harvester/internal/logger"
	"heightmap-harvester/internal/timing"
)

// Options configure the filter stages ahead of the resample. The zero value
// is not meaningful; start from DefaultOptions.
type Options struct {
	Diameter   int
	SigmaColor float64
	SigmaSpace float64
	Amount     float64
	Workers    int
}

// DefaultOptions returns the validated reference parameters.
func DefaultOptions() Options {
	return Options{
		Diameter:   filters.DefaultDiameter,
		SigmaColor: filters.DefaultSigmaColor,
		SigmaSpace: filters.DefaultSigmaSpace,
		Amount:     filters.DefaultAmount,
		Workers:    0,
	}
}

func (o Options) toParams() map[string]interface{} {
	return map[string]interface{}{
		"diameter":       o.Diameter,
		"sigma_color":    o.SigmaColor,
		"sigma_space":    o.SigmaSpace,
		"unsharp_amount": o.Amount,
		"workers":        o.Workers,
	}
}

// Generator runs the denoise, sharpen and resample stages in fixed order.
type Generator struct {
	logger  logger.Logger
	tracker *timing.Tracker
	opts    Options
}

func NewGenerator(log logger.Logger, opts Options) *Generator {
	if log == nil {
		log = logger.Nop{}
	}

	return &Generator{
		logger:  log,
		tracker: timing.NewTracker(),
		opts:    opts,
	}
}

// Generate converts an intensity grid into a height grid of outWidth by
// outHeight samples, each scaled by scaleFactor. The input grid is never
// modified; every stage allocates its own output.
func (g *Generator) Generate(ctx context.Context, src *grid.Grid, scaleFactor float64, outWidth, outHeight int) (*grid.FloatGrid, error) {
	if src == nil {
		return nil, filters.NewDegenerateInputError(0, 0, "no grid")
	}

	g.logger.Debug("heightmap", "generation started", map[string]interface{}{
		"input_width":   src.Width(),
		"input_height":  src.Height(),
		"output_width":  outWidth,
		"output_height": outHeight,
		"scale_factor":  scaleFactor,
		"diameter":      g.opts.Diameter,
		"sigma_color":   g.opts.SigmaColor,
		"sigma_space":   g.opts.SigmaSpace,
		"amount":        g.opts.Amount,
	})

	params := g.opts.toParams()
	steps := chain.NewProcessingChain(
		filters.NewBilateralStep(),
		filters.NewUnsharpStep(),
	)

	start := g.tracker.StartTiming("filter_chain")
	sharpened, err := steps.Execute(ctx, src, params)
	if err != nil {
		return nil, fmt.Errorf("filter chain failed: %w", err)
	}
	chainElapsed := g.tracker.EndTiming("filter_chain", start)

	start = g.tracker.StartTiming("resample")
	heights, err := filters.ResampleAndScale(sharpened, scaleFactor, outWidth, outHeight)
	if err != nil {
		return nil, fmt.Errorf("resample failed: %w", err)
	}
	resampleElapsed := g.tracker.EndTiming("resample", start)

	g.logger.Info("heightmap", "generation complete", map[string]interface{}{
		"filter_chain_ms": chainElapsed.Milliseconds(),
		"resample_ms":     resampleElapsed.Milliseconds(),
		"samples":         outWidth * outHeight,
	})

	return heights, nil
}

// Generate runs the pipeline with the default options. It is the pure
// grid-in, grid-out entry point; no logging, no shared state.
func Generate(src *grid.Grid, scaleFactor float64, outWidth, outHeight int) (*grid.FloatGrid, error) {
	gen := NewGenerator(logger.Nop{}, DefaultOptions())
	return gen.Generate(context.Background(), src, scaleFactor, outWidth, outHeight)
}
