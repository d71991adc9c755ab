package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MockSource is an in-memory Source implementation for testing
type MockSource struct {
	mu        sync.RWMutex
	documents map[string][]byte

	// Optional error injection for failure-path tests
	ListErr error
	ReadErr error
}

// NewMockSource creates a new MockSource instance
func NewMockSource() *MockSource {
	return &MockSource{
		documents: make(map[string][]byte),
	}
}

// Put stores a document in the mock source
func (m *MockSource) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[key] = data
}

// List implements Source.List
func (m *MockSource) List(ctx context.Context, opts *ListOptions) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for key := range m.documents {
		if opts != nil && opts.Prefix != "" && !strings.HasPrefix(key, opts.Prefix) {
			continue
		}
		keys = append(keys, key)
	}

	sort.Strings(keys)

	if opts != nil && opts.MaxResults > 0 && len(keys) > opts.MaxResults {
		keys = keys[:opts.MaxResults]
	}

	return keys, nil
}

// Read implements Source.Read
func (m *MockSource) Read(ctx context.Context, key string) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.documents[key]
	if !ok {
		return nil, NewSourceError("Read", key, ErrDocumentNotFound, false)
	}
	return data, nil
}

// Exists implements Source.Exists
func (m *MockSource) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.documents[key]
	return ok, nil
}

// Close implements Source.Close
func (m *MockSource) Close() error {
	return nil
}
