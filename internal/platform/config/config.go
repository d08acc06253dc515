package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/snapctx/snapctx/internal/platform/errors"
)

const (
	DefaultMaxFileBytes int64 = 1_500_000

	EnvBatchMode      = "SNAPCTX_BATCH_MODE"
	EnvFollowSymlinks = "SNAPCTX_FOLLOW_SYMLINKS"
	EnvIgnoreFiles    = "SNAPCTX_IGNORE_FILES"
	EnvMaxFileBytes   = "SNAPCTX_MAX_FILE_BYTES"
	EnvIgnore         = "SNAPCTX_IGNORE"
	EnvOutputDir      = "SNAPCTX_OUTPUT_DIR"
	EnvLog            = "SNAPCTX_LOG"
	EnvCallerPWD      = "SNAPCTX_CALLER_PWD"
)

// ProjectFileNames are looked up, in order, in the project root.
var ProjectFileNames = []string{".snapctx.yaml", ".snapctx.yml"}

// Settings is the effective run configuration after layering
// defaults < project file < environment < flags.
type Settings struct {
	BatchMode      bool
	FollowSymlinks bool
	IgnoreFiles    bool
	MaxFileBytes   int64
	Ignore         []string
	OutputDir      string
	LogLevel       string
}

func Defaults() Settings {
	return Settings{
		IgnoreFiles:  true,
		MaxFileBytes: DefaultMaxFileBytes,
		LogLevel:     "info",
	}
}

// ProjectFile is the on-disk shape of .snapctx.yaml. Pointer fields distinguish
// "unset" from the zero value.
type ProjectFile struct {
	Ignore         []string `yaml:"ignore"`
	FollowSymlinks *bool    `yaml:"followSymlinks"`
	IgnoreFiles    *bool    `yaml:"ignoreFiles"`
	MaxFileBytes   *int64   `yaml:"maxFileBytes"`
	BatchMode      *bool    `yaml:"batchMode"`
	OutputDir      string   `yaml:"outputDir"`
}

// LoadDotEnv loads dir/.env into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(dir string) error {
	p := filepath.Join(dir, ".env")
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.NewConfig("cannot stat "+p, err)
	}
	if err := godotenv.Load(p); err != nil {
		return apperrors.NewConfig("cannot load "+p, err)
	}
	return nil
}

// LoadProjectFile reads the first existing project config file under root.
// found is false when none exists.
func LoadProjectFile(root string) (pf ProjectFile, path string, found bool, err error) {
	for _, name := range ProjectFileNames {
		p := filepath.Join(root, name)
		b, readErr := os.ReadFile(p)
		if readErr != nil {
			if errors.Is(readErr, fs.ErrNotExist) {
				continue
			}
			return ProjectFile{}, p, false, apperrors.NewConfig("cannot read "+p, readErr)
		}
		if err := yaml.Unmarshal(b, &pf); err != nil {
			return ProjectFile{}, p, false, apperrors.NewConfig("invalid "+name, err)
		}
		return pf, p, true, nil
	}
	return ProjectFile{}, "", false, nil
}

func (s Settings) ApplyProjectFile(pf ProjectFile) Settings {
	if len(pf.Ignore) > 0 {
		s.Ignore = append(append([]string(nil), s.Ignore...), pf.Ignore...)
	}
	if pf.FollowSymlinks != nil {
		s.FollowSymlinks = *pf.FollowSymlinks
	}
	if pf.IgnoreFiles != nil {
		s.IgnoreFiles = *pf.IgnoreFiles
	}
	if pf.MaxFileBytes != nil && *pf.MaxFileBytes > 0 {
		s.MaxFileBytes = *pf.MaxFileBytes
	}
	if pf.BatchMode != nil {
		s.BatchMode = *pf.BatchMode
	}
	if strings.TrimSpace(pf.OutputDir) != "" {
		s.OutputDir = strings.TrimSpace(pf.OutputDir)
	}
	return s
}

// ApplyEnv overlays SNAPCTX_* variables read through lookup (os.LookupEnv in production).
func (s Settings) ApplyEnv(lookup func(string) (string, bool)) (Settings, error) {
	var err error
	if s.BatchMode, err = envBool(lookup, EnvBatchMode, s.BatchMode); err != nil {
		return s, err
	}
	if s.FollowSymlinks, err = envBool(lookup, EnvFollowSymlinks, s.FollowSymlinks); err != nil {
		return s, err
	}
	if s.IgnoreFiles, err = envBool(lookup, EnvIgnoreFiles, s.IgnoreFiles); err != nil {
		return s, err
	}
	if v, ok := lookup(EnvMaxFileBytes); ok && strings.TrimSpace(v) != "" {
		n, perr := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if perr != nil || n <= 0 {
			return s, apperrors.NewConfig(EnvMaxFileBytes+" must be a positive integer", perr)
		}
		s.MaxFileBytes = n
	}
	if v, ok := lookup(EnvIgnore); ok {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				s.Ignore = append(s.Ignore, item)
			}
		}
	}
	if v, ok := lookup(EnvOutputDir); ok && strings.TrimSpace(v) != "" {
		s.OutputDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLog); ok && strings.TrimSpace(v) != "" {
		s.LogLevel = strings.TrimSpace(v)
	}
	return s, nil
}

func envBool(lookup func(string) (string, bool), key string, fallback bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback, apperrors.NewConfig(key+" must be a boolean", err)
	}
	return b, nil
}
