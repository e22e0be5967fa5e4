package filters

import (
	"fmt"

	"heightmap-harvester/internal/grid"
)

// ConfigurationError reports a filter parameter that fails validation. It is
// returned before any pixel processing begins.
type ConfigurationError struct {
	Parameter string
	Value     interface{}
	Message   string
}

func NewConfigurationError(parameter string, value interface{}, message string) *ConfigurationError {
	return &ConfigurationError{
		Parameter: parameter,
		Value:     value,
		Message:   message,
	}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid parameter '%s' with value '%v': %s",
		e.Parameter, e.Value, e.Message)
}

// DegenerateInputError reports an input grid too small to process.
type DegenerateInputError struct {
	Width   int
	Height  int
	Message string
}

func NewDegenerateInputError(width, height int, message string) *DegenerateInputError {
	return &DegenerateInputError{
		Width:   width,
		Height:  height,
		Message: message,
	}
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input grid %dx%d: %s", e.Width, e.Height, e.Message)
}

func validateInput(src *grid.Grid) error {
	if src == nil {
		return NewDegenerateInputError(0, 0, "no grid")
	}
	if src.Width() < 1 || src.Height() < 1 {
		return NewDegenerateInputError(src.Width(), src.Height(), "grid must be at least 1x1")
	}
	return nil
}
