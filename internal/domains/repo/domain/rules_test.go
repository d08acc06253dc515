package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIgnoreRuleSetCoversVCSDependencyAndBuildDirs(t *testing.T) {
	s := DefaultIgnoreRuleSet()
	for _, name := range []string{".git", "node_modules", "target", "build", "dist", "__pycache__", ".venv"} {
		assert.True(t, s.Contains(name), name)
	}
	assert.False(t, s.Contains("src"))
}

func TestIgnoreRuleSetMatchesAnyComponent(t *testing.T) {
	s := DefaultIgnoreRuleSet()

	assert.True(t, s.MatchesAnyComponent([]string{"home", "proj", "node_modules", "a", "b.js"}))
	assert.True(t, s.MatchesAnyComponent([]string{"proj", "src", "deep", "target"}))
	assert.False(t, s.MatchesAnyComponent([]string{"proj", "src", "main.rs"}))
	// Components match whole names only.
	assert.False(t, s.MatchesAnyComponent([]string{"proj", "targets", "rebuild"}))
}

func TestIgnoreRuleSetWithIsImmutable(t *testing.T) {
	base := NewIgnoreRuleSet("a")
	ext := base.With("b", " ", "")

	assert.Equal(t, []string{"a"}, base.Names())
	assert.Equal(t, []string{"a", "b"}, ext.Names())
}

func TestIgnoreRuleSetZeroAndEmpty(t *testing.T) {
	var zero IgnoreRuleSet
	assert.True(t, zero.IsZero())
	assert.False(t, zero.MatchesAnyComponent([]string{".git"}))

	empty := NewIgnoreRuleSet()
	assert.False(t, empty.IsZero())
	assert.False(t, empty.MatchesAnyComponent([]string{".git"}))
}

func TestIsHiddenOrBytecode(t *testing.T) {
	cases := map[string]bool{
		".env":        true,
		".gitignore":  true,
		"mod.pyc":     true,
		"mod.pyo":     true,
		"Main.class":  true,
		"main.rs":     false,
		"pyc":         false,
		"README.md":   false,
		"file.pyc.md": false,
	}
	for name, want := range cases {
		assert.Equal(t, want, IsHiddenOrBytecode(name), name)
	}
}
