package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/snapctx/snapctx/internal/platform/errors"
)

// ToPosixRel returns a clean, POSIX-style relative path from base to target.
// It is intended to keep displayed paths stable across OSes.
func ToPosixRel(baseDir string, targetPath string) (string, error) {
	if strings.TrimSpace(baseDir) == "" {
		return "", errors.NewInternal("baseDir is empty", nil)
	}
	if strings.TrimSpace(targetPath) == "" {
		return "", errors.NewInternal("targetPath is empty", nil)
	}

	rel, err := filepath.Rel(baseDir, targetPath)
	if err != nil {
		return "", errors.NewInternal("failed to compute relative path", err)
	}

	rel = filepath.Clean(rel)
	rel = filepath.ToSlash(rel)
	rel = strings.TrimPrefix(rel, "./")

	return rel, nil
}

// Components splits a cleaned path into its segments, dropping the volume,
// the leading separator and empty or "." segments.
//
//	/home/me/proj/src/main.rs -> [home me proj src main.rs]
func Components(p string) []string {
	p = filepath.Clean(p)
	p = strings.TrimPrefix(p, filepath.VolumeName(p))
	raw := strings.Split(p, string(os.PathSeparator))
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		if c == "" || c == "." {
			continue
		}
		out = append(out, c)
	}
	return out
}

// IsWithin reports whether path equals base or lies beneath it (lexically).
func IsWithin(path string, base string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}
