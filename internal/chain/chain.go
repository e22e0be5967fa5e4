package chain

import (
	"context"
	"fmt"

	"heightmap-harvester/internal/grid"
)

// ProcessingStep is one intensity-grid transform in a chain. Steps must
// return a new grid and leave their input untouched.
type ProcessingStep interface {
	Apply(ctx context.Context, input *grid.Grid, params map[string]interface{}) (*grid.Grid, error)
	Name() string
	ShouldExecute(params map[string]interface{}) bool
}

type ProcessingChain struct {
	steps []ProcessingStep
}

func NewProcessingChain(steps ...ProcessingStep) *ProcessingChain {
	return &ProcessingChain{
		steps: steps,
	}
}

// Execute runs the enabled steps in order, feeding each step's output to the
// next. Steps whose ShouldExecute returns false are skipped.
func (pc *ProcessingChain) Execute(ctx context.Context, input *grid.Grid, params map[string]interface{}) (*grid.Grid, error) {
	current := input

	for _, step := range pc.steps {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !step.ShouldExecute(params) {
			continue
		}

		result, err := step.Apply(ctx, current, params)
		if err != nil {
			return nil, fmt.Errorf("step %s failed: %w", step.Name(), err)
		}

		current = result
	}

	return current, nil
}

func (pc *ProcessingChain) AddStep(step ProcessingStep) {
	pc.steps = append(pc.steps, step)
}

func (pc *ProcessingChain) StepCount() int {
	return len(pc.steps)
}

func (pc *ProcessingChain) GetStepNames() []string {
	names := make([]string, len(pc.steps))
	for i, step := range pc.steps {
		names[i] = step.Name()
	}
	return names
}
