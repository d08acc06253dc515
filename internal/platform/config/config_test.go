package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/snapctx/snapctx/internal/platform/errors"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.True(t, s.IgnoreFiles)
	assert.False(t, s.FollowSymlinks)
	assert.False(t, s.BatchMode)
	assert.Equal(t, DefaultMaxFileBytes, s.MaxFileBytes)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	yml := "ignore:\n  - fixtures\n  - 'docs/**'\nfollowSymlinks: true\nignoreFiles: false\nmaxFileBytes: 2048\noutputDir: snaps\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".snapctx.yaml"), []byte(yml), 0o644))

	pf, path, found, err := LoadProjectFile(dir)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, filepath.Join(dir, ".snapctx.yaml"), path)

	s := Defaults().ApplyProjectFile(pf)
	assert.Equal(t, []string{"fixtures", "docs/**"}, s.Ignore)
	assert.True(t, s.FollowSymlinks)
	assert.False(t, s.IgnoreFiles)
	assert.Equal(t, int64(2048), s.MaxFileBytes)
	assert.Equal(t, "snaps", s.OutputDir)
	assert.False(t, s.BatchMode, "unset keys keep their defaults")
}

func TestLoadProjectFileMissing(t *testing.T) {
	_, _, found, err := LoadProjectFile(t.TempDir())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadProjectFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".snapctx.yml"), []byte("ignore: [unterminated\n"), 0o644))

	_, _, _, err := LoadProjectFile(dir)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))
}

func TestApplyEnvOverridesProjectFile(t *testing.T) {
	tru := true
	s := Defaults().ApplyProjectFile(ProjectFile{FollowSymlinks: &tru, Ignore: []string{"a"}})

	s, err := s.ApplyEnv(lookupFrom(map[string]string{
		EnvFollowSymlinks: "false",
		EnvBatchMode:      "1",
		EnvMaxFileBytes:   " 10 ",
		EnvIgnore:         "b, ,c",
		EnvLog:            "debug",
		EnvOutputDir:      "/tmp/out",
	}))
	require.NoError(t, err)

	assert.False(t, s.FollowSymlinks)
	assert.True(t, s.BatchMode)
	assert.Equal(t, int64(10), s.MaxFileBytes)
	assert.Equal(t, []string{"a", "b", "c"}, s.Ignore)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "/tmp/out", s.OutputDir)
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	_, err := Defaults().ApplyEnv(lookupFrom(map[string]string{EnvIgnoreFiles: "maybe"}))
	assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))

	_, err = Defaults().ApplyEnv(lookupFrom(map[string]string{EnvMaxFileBytes: "-5"}))
	assert.Equal(t, apperrors.KindConfig, apperrors.KindOf(err))
}

func TestApplyEnvEmptyValuesAreUnset(t *testing.T) {
	s, err := Defaults().ApplyEnv(lookupFrom(map[string]string{EnvIgnoreFiles: "", EnvMaxFileBytes: ""}))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	key := "SNAPCTX_TEST_DOTENV_KEY"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=from-file\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "from-file", os.Getenv(key))

	require.NoError(t, LoadDotEnv(t.TempDir()), "missing .env is not an error")
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	key := "SNAPCTX_TEST_DOTENV_KEEP"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=from-file\n"), 0o644))
	t.Setenv(key, "from-env")

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "from-env", os.Getenv(key))
}
