package models

import (
	"fmt"
	"sync"
)

// PipelineParameters contains the configuration for one named pipeline.
type PipelineParameters struct {
	Name       string
	Parameters map[string]interface{}
	Defaults   map[string]interface{}
	Ranges     map[string]ParameterRange
}

// ParameterRange defines the valid range for a parameter.
type ParameterRange struct {
	Min  interface{}
	Max  interface{}
	Step interface{}
}

// PipelineConfiguration manages pipeline parameter sets behind a lock so GUI
// or CLI layers and workers can share it.
type PipelineConfiguration struct {
	mu              sync.RWMutex
	currentPipeline string
	parameters      map[string]PipelineParameters
}

// NewPipelineConfiguration builds the registry with the validated height-map
// defaults: diameter 5, sigma_color 25.0, sigma_space 5.0, unsharp_amount 1.5.
func NewPipelineConfiguration() *PipelineConfiguration {
	config := &PipelineConfiguration{
		parameters: make(map[string]PipelineParameters),
	}

	config.parameters["Height Map"] = PipelineParameters{
		Name: "Height Map",
		Parameters: map[string]interface{}{
			"diameter":          5,
			"sigma_color":       25.0,
			"sigma_space":       5.0,
			"unsharp_amount":    1.5,
			"scale_factor":      1.0,
			"bilateral_denoise": true,
			"unsharp_mask":      true,
			"workers":           0,
		},
		Defaults: map[string]interface{}{
			"diameter":          5,
			"sigma_color":       25.0,
			"sigma_space":       5.0,
			"unsharp_amount":    1.5,
			"scale_factor":      1.0,
			"bilateral_denoise": true,
			"unsharp_mask":      true,
			"workers":           0,
		},
		Ranges: map[string]ParameterRange{
			"diameter":       {Min: 1, Max: 25, Step: 2},
			"sigma_color":    {Min: 0.1, Max: 300.0, Step: 0.1},
			"sigma_space":    {Min: 0.1, Max: 100.0, Step: 0.1},
			"unsharp_amount": {Min: 0.0, Max: 10.0, Step: 0.1},
			"workers":        {Min: 0, Max: 256, Step: 1},
		},
	}

	config.currentPipeline = "Height Map"

	return config
}

// GetCurrentPipeline returns the currently selected pipeline name.
func (pc *PipelineConfiguration) GetCurrentPipeline() string {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.currentPipeline
}

// GetParameters returns a copy of the named pipeline's parameters.
func (pc *PipelineConfiguration) GetParameters(pipeline string) (PipelineParameters, error) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	params, exists := pc.parameters[pipeline]
	if !exists {
		return PipelineParameters{}, NewValidationError("pipeline", pipeline, "pipeline not found")
	}

	return pc.copyParameters(params), nil
}

// SetParameter validates and updates a single parameter.
func (pc *PipelineConfiguration) SetParameter(pipeline, name string, value interface{}) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	params, exists := pc.parameters[pipeline]
	if !exists {
		return NewValidationError("pipeline", pipeline, "pipeline not found")
	}

	if err := validateParameter(params, name, value); err != nil {
		return err
	}

	params.Parameters[name] = value
	pc.parameters[pipeline] = params

	return nil
}

// ResetToDefaults restores the named pipeline's default parameters.
func (pc *PipelineConfiguration) ResetToDefaults(pipeline string) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	params, exists := pc.parameters[pipeline]
	if !exists {
		return NewValidationError("pipeline", pipeline, "pipeline not found")
	}

	for key, value := range params.Defaults {
		params.Parameters[key] = value
	}

	pc.parameters[pipeline] = params
	return nil
}

func validateParameter(params PipelineParameters, name string, value interface{}) error {
	paramRange, hasRange := params.Ranges[name]
	if !hasRange {
		return nil
	}

	switch v := value.(type) {
	case int:
		if min, ok := paramRange.Min.(int); ok && v < min {
			return NewValidationError(name, value, "value below minimum")
		}
		if max, ok := paramRange.Max.(int); ok && v > max {
			return NewValidationError(name, value, "value above maximum")
		}
	case float64:
		if min, ok := paramRange.Min.(float64); ok && v < min {
			return NewValidationError(name, value, "value below minimum")
		}
		if max, ok := paramRange.Max.(float64); ok && v > max {
			return NewValidationError(name, value, "value above maximum")
		}
	}

	return nil
}

func (pc *PipelineConfiguration) copyParameters(src PipelineParameters) PipelineParameters {
	dst := PipelineParameters{
		Name:       src.Name,
		Parameters: make(map[string]interface{}),
		Defaults:   make(map[string]interface{}),
		Ranges:     make(map[string]ParameterRange),
	}

	for k, v := range src.Parameters {
		dst.Parameters[k] = v
	}
	for k, v := range src.Defaults {
		dst.Defaults[k] = v
	}
	for k, v := range src.Ranges {
		dst.Ranges[k] = v
	}

	return dst
}

// ValidationError reports a rejected parameter update.
type ValidationError struct {
	Parameter string
	Value     interface{}
	Message   string
}

func NewValidationError(parameter string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Parameter: parameter,
		Value:     value,
		Message:   message,
	}
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for parameter '%s' with value '%v': %s",
		ve.Parameter, ve.Value, ve.Message)
}
