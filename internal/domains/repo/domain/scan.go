package domain

import (
	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
)

// EntryWarning records a sub-entry that was skipped because it could not be
// stat'd or read. It never aborts a scan.
type EntryWarning struct {
	Path string // absolute path of the entry
	Op   string // "stat", "readdir", "read ignore file", ...
	Err  error
}

func (w EntryWarning) String() string {
	if w.Err == nil {
		return w.Op + " " + w.Path
	}
	return w.Op + " " + w.Path + ": " + w.Err.Error()
}

// ScanResult is the outcome of one scan: files in traversal order plus
// per-entry diagnostics.
type ScanResult struct {
	Files    []project.FileRefV1
	Warnings []EntryWarning
}

// ScanOptions configure a scanner at construction.
type ScanOptions struct {
	// Ignore is the component rule set; the zero value means DefaultIgnoreRuleSet().
	Ignore IgnoreRuleSet

	// FollowSymlinks descends into linked directories and lists linked files.
	FollowSymlinks bool

	// UseIgnoreFiles honors IgnoreFileNames found in every visited directory
	// and, inside a repository, in the directories above the root up to its top.
	UseIgnoreFiles  bool
	IgnoreFileNames []string

	// ExcludeGlobs are matched against root-relative POSIX paths.
	ExcludeGlobs []string
}

// DefaultIgnoreFileNames are the per-directory ignore files read when UseIgnoreFiles is set.
var DefaultIgnoreFileNames = []string{".gitignore", ".ignore"}
