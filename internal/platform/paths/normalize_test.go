package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPosixRel(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "home", "me", "proj")
	rel, err := ToPosixRel(base, filepath.Join(base, "src", "main.rs"))
	require.NoError(t, err)
	assert.Equal(t, "src/main.rs", rel)

	_, err = ToPosixRel("", "x")
	assert.Error(t, err)
}

func TestComponents(t *testing.T) {
	p := filepath.Join(string(filepath.Separator), "home", "me", "proj", ".", "src", "main.rs")
	assert.Equal(t, []string{"home", "me", "proj", "src", "main.rs"}, Components(p))
	assert.Empty(t, Components(string(filepath.Separator)))
}

func TestIsWithin(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "a", "b")
	assert.True(t, IsWithin(base, base))
	assert.True(t, IsWithin(filepath.Join(base, "c"), base))
	assert.False(t, IsWithin(filepath.Join(string(filepath.Separator), "a"), base))
	assert.False(t, IsWithin(filepath.Join(string(filepath.Separator), "a", "bc"), base))
	assert.True(t, IsWithin(filepath.Join(base, "..x"), base))
}
