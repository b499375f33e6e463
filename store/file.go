package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Ensure FileKV implements KV
var _ KV = (*FileKV)(nil)

// FileKV stores each key as a <key>.json file inside a data directory.
// Writes go through a temp file and rename, so a watcher or a concurrent
// reader never observes a half-written value.
type FileKV struct {
	dir string
}

// OpenFile opens a file-backed KV store rooted at dir, creating the
// directory if needed.
func OpenFile(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// Dir returns the data directory, for watchers.
func (f *FileKV) Dir() string {
	return f.dir
}

// Get reads the value for key, or (nil, nil) if it was never written.
func (f *FileKV) Get(key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return raw, nil
}

// Set writes the value for key atomically.
func (f *FileKV) Set(key string, value []byte) error {
	target := f.path(key)
	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; files are closed per operation.
func (f *FileKV) Close() error {
	return nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
