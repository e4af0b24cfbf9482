package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Dir is a KV storing each key in a "<key>.json" file of a directory.
//
// The files are plain, indented JSON: they can be read, diffed and versioned by hand.
type Dir struct {
	path string
	log  *zap.Logger
}

// OpenDir returns a KV backed by the directory at path, created on first write.
func OpenDir(path string, log *zap.Logger) *Dir {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dir{path: path, log: log.With(zap.String("dir", path))}
}

// Path returns the directory holding the files.
func (d *Dir) Path() string { return d.path }

func (d *Dir) file(key string) string { return filepath.Join(d.path, key+".json") }

func (d *Dir) Get(_ context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", key, err)
	}
	return content, nil
}

// Put writes the value into a temporary file first, then renames it over the previous
// one so that a crash never leaves a truncated file behind.
func (d *Dir) Put(_ context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", d.path, err)
	}
	f, err := os.CreateTemp(d.path, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", key, err)
	}
	defer os.Remove(f.Name()) // no-op once renamed

	if _, err := f.Write(value); err != nil {
		f.Close()
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := os.Rename(f.Name(), d.file(key)); err != nil {
		return fmt.Errorf("could not replace %q: %w", key, err)
	}
	d.log.Debug("stored", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (d *Dir) Close() error { return nil }
