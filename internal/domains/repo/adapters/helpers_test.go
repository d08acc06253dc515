package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snapctx/snapctx/internal/domains/repo/domain"
)

// writeTree creates files (POSIX relative paths) under a fresh project root.
func writeTree(t *testing.T, files map[string]string) domain.ProjectRoot {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for rel, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	root, err := domain.ResolveRoot(dir)
	require.NoError(t, err)
	return root
}

func relPaths(res domain.ScanResult) []string {
	out := make([]string, 0, len(res.Files))
	for _, f := range res.Files {
		out = append(out, f.RelPath)
	}
	return out
}
