package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File is a Store keeping one file per key under a root folder. It is the
// default backend: a budget ledger is small enough that rewriting the whole
// value on every Set is fine.
type File struct {
	root string
}

// NewFile creates a file store rooted at the given folder, creating it if
// needed.
func NewFile(root string) (*File, error) {
	root = strings.TrimSpace(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("could not create store folder %q: %w", root, err)
	}
	return &File{root: root}, nil
}

// path maps a key to its file. Keys come lowercased from the ledger and
// contain no separators, but clean anyway so a hostile key cannot escape the
// root.
func (f *File) path(key string) string {
	return filepath.Join(f.root, filepath.Base(filepath.Clean(key))+".json")
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("could not read key %q: %w", key, err)
	}
	return string(data), nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}

var _ Store = (*File)(nil)
