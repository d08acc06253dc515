package adapters

import (
	"github.com/snapctx/snapctx/internal/domains/snapshot/ports"
	artifactwriter "github.com/snapctx/snapctx/internal/platform/artifact"
)

// PlatformSnapshotWriter adapts the shared platform artifact writer to the snapshot domain port.
type PlatformSnapshotWriter struct {
	Writer artifactwriter.Writer
}

func NewPlatformSnapshotWriter(w artifactwriter.Writer) PlatformSnapshotWriter {
	return PlatformSnapshotWriter{Writer: w}
}

func (p PlatformSnapshotWriter) WriteSnapshot(req ports.WriteSnapshotRequest) (string, error) {
	return p.Writer.WriteSnapshot(artifactwriter.WriteRequest{
		Dir:         req.Dir,
		ProjectName: req.ProjectName,
		Content:     req.Content,
		GeneratedAt: req.GeneratedAt,
	})
}

func (p PlatformSnapshotWriter) Append(path string, text string) error {
	return p.Writer.Append(path, text)
}
