package snapshot

import (
	"time"

	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
)

// SnapshotReportV1 is the machine-readable inventory of one snapshot run.
type SnapshotReportV1 struct {
	GeneratedAt string                   `json:"generatedAt"` // RFC3339Nano
	OutputPath  string                   `json:"outputPath"`
	Profile     project.ProjectProfileV1 `json:"profile"`

	FilesScanned  int                 `json:"filesScanned"`
	FilesIncluded int                 `json:"filesIncluded"` // files whose content made it into the document
	TotalBytes    int64               `json:"totalBytes"`
	Files         []project.FileRefV1 `json:"files"`

	PromptAppended bool     `json:"promptAppended"`
	Warnings       []string `json:"warnings,omitempty"`
}

func FormatRFC3339Nano(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
