package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
)

// LocalStorage implements BlobStore on the local filesystem. It exists so
// the server can run without Firebase credentials during development; the
// HTTP layer serves the saved files back through the download handler.
type LocalStorage struct {
	baseURL   string
	uploadDir string
}

func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{baseURL: baseURL, uploadDir: uploadDir}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	fullPath := filepath.Join(s.uploadDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	// The download handler resolves the key back to the file on disk.
	return fmt.Sprintf("%s/api/v1/files/download?key=%s", s.baseURL, url.QueryEscape(key)), nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.uploadDir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) DeleteByURL(ctx context.Context, objectURL string) error {
	u, err := url.Parse(objectURL)
	if err != nil {
		return fmt.Errorf("unparseable object url %s: %w", objectURL, err)
	}
	key := u.Query().Get("key")
	if key == "" {
		return fmt.Errorf("object url %s carries no storage key", objectURL)
	}
	return s.Delete(ctx, key)
}

// Open reads a stored file back for the download handler.
func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.uploadDir, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
