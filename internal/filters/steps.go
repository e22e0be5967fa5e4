package filters

import (
	"context"
	"runtime"

	"heightmap-harvester/internal/grid"
)

// Default filter parameters validated against the reference height-map
// behavior. Callers override them through the parameter map or the
// configuration registry, never by editing these.
const (
	DefaultDiameter   = 5
	DefaultSigmaColor = 25.0
	DefaultSigmaSpace = 5.0
	DefaultAmount     = 1.5
)

// BilateralStep runs the bilateral denoise inside a processing chain.
type BilateralStep struct{}

func NewBilateralStep() *BilateralStep {
	return &BilateralStep{}
}

func (b *BilateralStep) Name() string {
	return "bilateral_denoise"
}

func (b *BilateralStep) ShouldExecute(params map[string]interface{}) bool {
	if enabled, ok := params["bilateral_denoise"].(bool); ok {
		return enabled
	}
	return true
}

func (b *BilateralStep) Apply(ctx context.Context, input *grid.Grid, params map[string]interface{}) (*grid.Grid, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	diameter := DefaultDiameter
	if val, ok := params["diameter"].(int); ok {
		diameter = val
	}

	sigmaColor := DefaultSigmaColor
	if val, ok := params["sigma_color"].(float64); ok {
		sigmaColor = val
	}

	sigmaSpace := DefaultSigmaSpace
	if val, ok := params["sigma_space"].(float64); ok {
		sigmaSpace = val
	}

	workers := runtime.NumCPU()
	if val, ok := params["workers"].(int); ok {
		workers = val
	}

	return BilateralFilterParallel(ctx, input, diameter, sigmaColor, sigmaSpace, workers)
}

// UnsharpStep runs the unsharp mask inside a processing chain.
type UnsharpStep struct{}

func NewUnsharpStep() *UnsharpStep {
	return &UnsharpStep{}
}

func (u *UnsharpStep) Name() string {
	return "unsharp_mask"
}

func (u *UnsharpStep) ShouldExecute(params map[string]interface{}) bool {
	if enabled, ok := params["unsharp_mask"].(bool); ok {
		return enabled
	}
	return true
}

func (u *UnsharpStep) Apply(ctx context.Context, input *grid.Grid, params map[string]interface{}) (*grid.Grid, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	amount := DefaultAmount
	if val, ok := params["unsharp_amount"].(float64); ok {
		amount = val
	}

	return UnsharpMask(input, amount)
}
