package interfaces

import (
	"context"
	"io"
)

// WriteRequest describes one artifact write routed through an ArtifactStore.
type WriteRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	ContentType string
	Checksum    string
	Metadata    map[string]string
}

// ArtifactStore abstracts where generated build artifacts are persisted.
// Paths are relative to an implementation-defined site root.
type ArtifactStore interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req WriteRequest) error
	RemoveAll(ctx context.Context, path string) error
}
