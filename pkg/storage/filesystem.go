package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes rendered exports under a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./exports"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create exports directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// Save writes data to filename relative to the base dir. The file is written
// to a temporary sibling first and renamed into place, so a reader never sees
// a partial export.
func (s *LocalStorage) Save(filename string, data []byte) (string, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare export directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return filename, nil
}

// Path exposes the on-disk location of a stored file.
func (s *LocalStorage) Path(filename string) string {
	path, err := s.resolve(filename)
	if err != nil {
		return filepath.Join(s.baseDir, filepath.Base(filename))
	}
	return path
}

func (s *LocalStorage) resolve(filename string) (string, error) {
	clean := filepath.Clean(filename)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("export path %q escapes %s", filename, s.baseDir)
	}
	return filepath.Join(s.baseDir, clean), nil
}
