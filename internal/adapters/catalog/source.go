package catalog

import (
	"context"
)

// Document is one lesson catalog entry as stored in the source.
type Document struct {
	Key  string `json:"key"`
	Data []byte `json:"data"`
}

// ListOptions provides options for listing documents
type ListOptions struct {
	Prefix     string `json:"prefix,omitempty"`
	MaxResults int    `json:"max_results,omitempty"`
}

// Source provides an abstraction over where lesson catalog documents live.
// Implementations cover the local filesystem and an in-memory source for tests.
type Source interface {
	// List returns the keys of available documents matching opts
	List(ctx context.Context, opts *ListOptions) ([]string, error)

	// Read returns the raw document bytes for a key
	Read(ctx context.Context, key string) ([]byte, error)

	// Exists checks if a document exists at the given key
	Exists(ctx context.Context, key string) (bool, error)

	// Close cleans up any resources used by the source
	Close() error
}

// SourceConfig represents configuration for catalog sources
type SourceConfig struct {
	Type     string `json:"type" yaml:"type"`           // "local" or "mock"
	BasePath string `json:"base_path" yaml:"base_path"` // For local sources
}
