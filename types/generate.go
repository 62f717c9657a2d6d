package types

import "fmt"

// GenerateConfig enumerates the request options recognized by the AI
// backends. Construct it with NewGenerateConfig so invalid combinations are
// rejected up front instead of surfacing as opaque API errors.
type GenerateConfig struct {
	Model       string  // model identifier, required
	Stream      bool    // stream partial output instead of one blocking call
	Temperature float32 // sampling temperature, [0, 2]
}

func NewGenerateConfig(model string, stream bool, temperature float32) (GenerateConfig, error) {
	if model == "" {
		return GenerateConfig{}, fmt.Errorf("generate config: model is required")
	}
	if temperature < 0 || temperature > 2 {
		return GenerateConfig{}, fmt.Errorf("generate config: temperature %v out of range [0, 2]", temperature)
	}
	return GenerateConfig{Model: model, Stream: stream, Temperature: temperature}, nil
}
