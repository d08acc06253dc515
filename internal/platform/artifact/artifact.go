package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/snapctx/snapctx/internal/platform/clock"
	"github.com/snapctx/snapctx/internal/platform/errors"
	"github.com/snapctx/snapctx/internal/platform/glob"
)

// FilenameTimeLayout is the timestamp layout embedded in snapshot file names.
const FilenameTimeLayout = "20060102_150405"

type WriteRequest struct {
	Dir         string
	ProjectName string
	Content     string

	// GeneratedAt, if provided, is used for the filename timestamp.
	// This keeps the filename aligned with the document header.
	GeneratedAt *time.Time
}

type Writer struct {
	Clock clock.Clock
}

// WriteSnapshot writes <ProjectName>_snapshot_<YYYYMMDD_HHMMSS>.md into Dir.
// An existing file with the same name is replaced.
func (w Writer) WriteSnapshot(req WriteRequest) (string, error) {
	if w.Clock == nil {
		return "", errors.NewInternal("artifact writer clock is nil", nil)
	}
	if strings.TrimSpace(req.Dir) == "" {
		return "", errors.NewInternal("artifact dir is empty", nil)
	}
	if strings.TrimSpace(req.ProjectName) == "" {
		return "", errors.NewInternal("project name is empty", nil)
	}

	now := w.Clock.Now()
	if req.GeneratedAt != nil {
		now = *req.GeneratedAt
	}

	fullPath := filepath.Join(req.Dir, SnapshotFilename(req.ProjectName, now))

	if err := os.MkdirAll(req.Dir, 0o755); err != nil {
		return "", errors.New(errors.KindIO, "failed to create output directory", err)
	}
	if err := os.WriteFile(fullPath, []byte(req.Content), 0o644); err != nil {
		return "", errors.New(errors.KindIO, "failed to write snapshot file", err)
	}
	return fullPath, nil
}

// Append adds text to the end of an existing file.
func (w Writer) Append(path string, text string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return errors.New(errors.KindIO, "failed to open snapshot for append", err)
	}
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return errors.New(errors.KindIO, "failed to append to snapshot", err)
	}
	if err := f.Close(); err != nil {
		return errors.New(errors.KindIO, "failed to close snapshot", err)
	}
	return nil
}

// SnapshotFilename returns the file name for a snapshot taken at t.
func SnapshotFilename(projectName string, t time.Time) string {
	return fmt.Sprintf("%s_snapshot_%s.md", projectName, t.Format(FilenameTimeLayout))
}

// SnapshotGlob matches every snapshot file name SnapshotFilename can produce for projectName.
func SnapshotGlob(projectName string) string {
	return glob.Escape(projectName) + "_snapshot_*.md"
}
