package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes files to a directory on the local filesystem and
// serves them under a base URL.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates the storage directory if needed.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "./uploads"
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, baseURL: baseURL}, nil
}

// Save stores a file locally and returns its public URL.
func (s *LocalStorage) Save(_ context.Context, name string, reader io.Reader) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.Base(name))

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.url(filepath.Base(name)), nil
}

// Delete removes a stored file.
func (s *LocalStorage) Delete(_ context.Context, name string) error {
	fullPath := filepath.Join(s.basePath, filepath.Base(name))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) url(name string) string {
	if s.baseURL == "" {
		return fmt.Sprintf("/files/%s", name)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, name)
}
