// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTooLarge is returned when a file exceeds the maximum size of the loader.
var ErrTooLarge = errors.New("file exceeds maximum size")

// Loader handles loading ROM files from disk.
type Loader struct {
	maxSize int
}

// New creates a new ROM loader that rejects files larger than maxSize bytes.
func New(maxSize int) *Loader {
	return &Loader{
		maxSize: maxSize,
	}
}

// Load reads the complete ROM file. Files that are larger than the maximum
// size are rejected instead of being truncated, at most maxSize+1 bytes are
// read to detect this.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if len(data) > l.maxSize {
		return nil, fmt.Errorf("file %s is larger than %d bytes: %w", path, l.maxSize, ErrTooLarge)
	}
	return data, nil
}
