package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

type localStorage struct {
	rootDir       string
	publicBaseURL string
	logger        *zap.Logger
}

// NewLocal stores files under rootDir and builds public URLs from
// publicBaseURL, e.g. http://localhost:8080/uploads.
func NewLocal(rootDir, publicBaseURL string, logger ...*zap.Logger) Storage {
	l := zap.L().Named("storage.local")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.local")
	}
	return &localStorage{
		rootDir:       rootDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        l,
	}
}

// cleanPath rejects anything that would escape the root directory.
func (s *localStorage) cleanPath(path string) (string, error) {
	cleaned := filepath.Clean("/" + path)
	if cleaned == "/" {
		return "", fmt.Errorf("storage: empty path")
	}
	return filepath.Join(s.rootDir, cleaned), nil
}

func (s *localStorage) Upload(_ context.Context, path string, content io.Reader) (string, error) {
	fullPath, err := s.cleanPath(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}

	url := s.publicBaseURL + "/" + strings.TrimLeft(filepath.ToSlash(filepath.Clean("/"+path)), "/")
	s.logger.Debug("file stored", zap.String("path", path))
	return url, nil
}

func (s *localStorage) Remove(_ context.Context, path string) error {
	fullPath, err := s.cleanPath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove file: %w", err)
	}
	return nil
}
