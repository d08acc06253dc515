package ports

import "time"

type WriteSnapshotRequest struct {
	Dir         string
	ProjectName string
	Content     string
	GeneratedAt *time.Time
}

// SnapshotWriter persists the rendered document and accepts later appends to it.
type SnapshotWriter interface {
	WriteSnapshot(req WriteSnapshotRequest) (path string, err error)
	Append(path string, text string) error
}
