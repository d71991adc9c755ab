package catalog

import (
	"fmt"
)

// NewSource creates a Source from configuration. Every source is wrapped with
// retry logic so transient filesystem failures do not abort a whole seed run.
func NewSource(config *SourceConfig) (Source, error) {
	if config == nil {
		return nil, fmt.Errorf("source config cannot be nil")
	}

	var source Source
	switch config.Type {
	case "local", "":
		local, err := NewLocalSource(config.BasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create local source: %w", err)
		}
		source = local
	case "mock":
		source = NewMockSource()
	default:
		return nil, fmt.Errorf("unsupported source type: %s", config.Type)
	}

	return NewRetryableSource(source, DefaultRetryConfig()), nil
}
