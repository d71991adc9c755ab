package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalSource implements Source for a directory of JSON lesson documents
type LocalSource struct {
	basePath string
}

// NewLocalSource creates a new LocalSource instance
func NewLocalSource(basePath string) (*LocalSource, error) {
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, NewSourceError("NewLocalSource", "", err, false)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewSourceError("NewLocalSource", "", ErrDocumentNotFound, false)
		}
		return nil, NewSourceError("NewLocalSource", "", err, true)
	}
	if !info.IsDir() {
		return nil, NewSourceError("NewLocalSource", "", ErrInvalidKey, false)
	}

	return &LocalSource{
		basePath: absPath,
	}, nil
}

// List implements Source.List. Keys are the JSON file names relative to the
// base directory, returned in sorted order.
func (l *LocalSource) List(ctx context.Context, opts *ListOptions) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, NewSourceError("List", "", err, true)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		if opts != nil && opts.Prefix != "" && !strings.HasPrefix(name, opts.Prefix) {
			continue
		}
		keys = append(keys, name)
	}

	sort.Strings(keys)

	if opts != nil && opts.MaxResults > 0 && len(keys) > opts.MaxResults {
		keys = keys[:opts.MaxResults]
	}

	return keys, nil
}

// Read implements Source.Read
func (l *LocalSource) Read(ctx context.Context, key string) ([]byte, error) {
	if err := l.validateKey(key); err != nil {
		return nil, NewSourceError("Read", key, err, false)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(filepath.Join(l.basePath, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewSourceError("Read", key, ErrDocumentNotFound, false)
		}
		return nil, NewSourceError("Read", key, err, true)
	}

	return data, nil
}

// Exists implements Source.Exists
func (l *LocalSource) Exists(ctx context.Context, key string) (bool, error) {
	if err := l.validateKey(key); err != nil {
		return false, NewSourceError("Exists", key, err, false)
	}

	if _, err := os.Stat(filepath.Join(l.basePath, key)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, NewSourceError("Exists", key, err, true)
	}
	return true, nil
}

// Close implements Source.Close
func (l *LocalSource) Close() error {
	return nil
}

// validateKey rejects keys that would escape the base directory
func (l *LocalSource) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if strings.Contains(key, "..") || strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}
	return nil
}
