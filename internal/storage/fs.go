package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dramac-main/dramac-cms-sub001/pkg/interfaces"
)

// FileStore writes build artifacts beneath a fixed root directory. Paths in
// requests are relative to that root; escaping the root is rejected.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	cleaned := filepath.Clean(strings.TrimSpace(root))
	if cleaned == "" || cleaned == "." {
		return nil, errors.New("storage: root directory required")
	}
	return &FileStore{root: cleaned}, nil
}

var _ interfaces.ArtifactStore = (*FileStore)(nil)

func (s *FileStore) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resolved, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return fmt.Errorf("storage: ensure dir %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) WriteFile(ctx context.Context, req interfaces.WriteRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Content == nil {
		return errors.New("storage: write requires content reader")
	}
	resolved, err := s.resolve(req.Path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("storage: ensure parent for %s: %w", req.Path, err)
	}

	file, err := os.Create(resolved)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", req.Path, err)
	}
	if _, err := io.Copy(file, req.Content); err != nil {
		file.Close()
		return fmt.Errorf("storage: write %s: %w", req.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("storage: close %s: %w", req.Path, err)
	}
	return nil
}

func (s *FileStore) RemoveAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resolved, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(resolved); err != nil {
		return fmt.Errorf("storage: remove %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) resolve(path string) (string, error) {
	cleaned := filepath.Clean(strings.TrimSpace(path))
	if cleaned == "." || cleaned == "" {
		return s.root, nil
	}
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("storage: path %q escapes output root", path)
	}
	return filepath.Join(s.root, cleaned), nil
}
