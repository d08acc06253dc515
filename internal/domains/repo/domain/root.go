package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/snapctx/snapctx/internal/platform/errors"
)

// UnknownProjectName is used when the root has no usable last segment (e.g. "/").
const UnknownProjectName = "unknown"

// ProjectRoot is the canonical directory a run operates on.
type ProjectRoot struct {
	Path string // absolute, symlinks resolved
	Name string // last path segment, or UnknownProjectName
}

// ResolveRoot canonicalizes a user-supplied path (absolute or relative).
// It fails with a path resolution error if the path does not exist, cannot be
// resolved, or is not a directory.
func ResolveRoot(userPath string) (ProjectRoot, error) {
	if strings.TrimSpace(userPath) == "" {
		return ProjectRoot{}, errors.NewPathResolution(`""`, nil)
	}
	abs, err := filepath.Abs(userPath)
	if err != nil {
		return ProjectRoot{}, errors.NewPathResolution(userPath, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return ProjectRoot{}, errors.NewPathResolution(userPath, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return ProjectRoot{}, errors.NewPathResolution(userPath, err)
	}
	if !info.IsDir() {
		return ProjectRoot{}, errors.NewPathResolution(userPath, errNotDirectory)
	}
	return ProjectRoot{Path: resolved, Name: displayName(resolved)}, nil
}

func displayName(p string) string {
	base := filepath.Base(p)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return UnknownProjectName
	}
	return base
}

// Join returns the absolute path of name directly under the root.
func (r ProjectRoot) Join(name string) string {
	return filepath.Join(r.Path, name)
}

var errNotDirectory = fmt.Errorf("not a directory")
