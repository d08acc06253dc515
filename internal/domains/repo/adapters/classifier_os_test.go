package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapctx/snapctx/internal/domains/repo/domain"
)

func TestClassifyByMarker(t *testing.T) {
	cases := []struct {
		name   string
		files  map[string]string
		want   domain.ProjectType
		marker string
	}{
		{"rust", map[string]string{"Cargo.toml": ""}, domain.Rust, "Cargo.toml"},
		{"javascript", map[string]string{"package.json": "{}"}, domain.JavaScript, "package.json"},
		{"python requirements", map[string]string{"requirements.txt": ""}, domain.Python, "requirements.txt"},
		{"python setup", map[string]string{"setup.py": ""}, domain.Python, "setup.py"},
		{"rust wins tie", map[string]string{"Cargo.toml": "", "package.json": "{}"}, domain.Rust, "Cargo.toml"},
		{"javascript before python", map[string]string{"package.json": "{}", "setup.py": ""}, domain.JavaScript, "package.json"},
		{"unknown", map[string]string{"README.md": ""}, domain.Unknown, ""},
		{"nested marker ignored", map[string]string{"sub/Cargo.toml": ""}, domain.Unknown, ""},
	}

	c := NewOSClassifier(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := writeTree(t, tc.files)
			assert.Equal(t, tc.want, c.Classify(root))

			p := c.Profile(root)
			assert.Equal(t, tc.want.String(), p.Type)
			assert.Equal(t, tc.marker, p.Marker)
			assert.Equal(t, root.Path, p.RootPath)
			assert.Equal(t, root.Name, p.Name)
		})
	}
}

func TestClassifyIgnoresMarkerDirectory(t *testing.T) {
	root := writeTree(t, map[string]string{"package.json": "{}"})
	require.NoError(t, os.Mkdir(filepath.Join(root.Path, "Cargo.toml"), 0o755))

	assert.Equal(t, domain.JavaScript, NewOSClassifier(nil).Classify(root))
}

func TestClassifyMissingRootIsUnknown(t *testing.T) {
	root := domain.ProjectRoot{Path: filepath.Join(t.TempDir(), "missing"), Name: "missing"}
	assert.Equal(t, domain.Unknown, NewOSClassifier(nil).Classify(root))
}

func TestNewOSClassifierDropsNonBasenameMarkers(t *testing.T) {
	root := writeTree(t, map[string]string{"sub/go.mod": "", "Makefile": ""})

	c := NewOSClassifier([]domain.MarkerRule{
		{Type: domain.Rust, Marker: "sub/go.mod"},
		{Type: domain.Rust, Marker: ".."},
		{Type: domain.Python, Marker: " Makefile "},
	})
	assert.Equal(t, domain.Python, c.Classify(root))
}
