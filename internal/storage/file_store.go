package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// fileStore implements ImageStore on the local filesystem.
type fileStore struct {
	dir    string
	logger zerolog.Logger
}

// NewFileStore creates a filesystem-backed image store rooted at dir.
func NewFileStore(dir string, logger zerolog.Logger) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}

	return &fileStore{
		dir:    dir,
		logger: logger.With().Str("component", "image-store").Logger(),
	}, nil
}

// cleanKey confines a key to the store's root directory.
func (s *fileStore) cleanKey(key string) (string, error) {
	cleaned := filepath.Clean(key)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid image key: %s", key)
	}
	return filepath.Join(s.dir, cleaned), nil
}

// Put stores an image under the given key.
func (s *fileStore) Put(ctx context.Context, key string, body io.Reader) error {
	path, err := s.cleanKey(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create image subdirectory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to create image file")
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	written, err := io.Copy(file, body)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write image file")
		return fmt.Errorf("failed to write image file: %w", err)
	}

	s.logger.Debug().Str("key", key).Int64("bytes", written).Msg("image stored")
	return nil
}

// Get opens the image stored under the given key.
func (s *fileStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	path, err := s.cleanKey(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image %s not found: %w", key, err)
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to open image file")
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	return file, nil
}

// Delete removes the image stored under the given key.
func (s *fileStore) Delete(ctx context.Context, key string) error {
	path, err := s.cleanKey(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete image file")
		return fmt.Errorf("failed to delete image file: %w", err)
	}

	return nil
}
