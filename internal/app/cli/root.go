package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/snapctx/snapctx/internal/app/wiring"
	snapapp "github.com/snapctx/snapctx/internal/domains/snapshot/app"
	"github.com/snapctx/snapctx/internal/platform/config"
	"github.com/snapctx/snapctx/internal/platform/console"
	"github.com/snapctx/snapctx/internal/platform/errors"
	"github.com/snapctx/snapctx/internal/platform/glob"
)

const (
	exitOK    = 0
	exitUsage = 2
	exitError = 1
)

// Version is overridden at build time with -ldflags "-X .../cli.Version=...".
var Version = "dev"

type stringListFlag struct {
	values []string
}

func (s *stringListFlag) String() string {
	if s == nil || len(s.values) == 0 {
		return ""
	}
	return strings.Join(s.values, ",")
}

func (s *stringListFlag) Set(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	s.values = append(s.values, v)
	return nil
}

type flagValues struct {
	batchMode      bool
	prompt         string
	followSymlinks bool
	noIgnoreFiles  bool
	ignores        stringListFlag
	maxFileBytes   int64
	outputDir      string
	jsonOut        string
	copy           bool
	showSummary    bool
	verbose        bool
	version        bool
}

// Run executes snapctx with argv (argv[0] is the program name) and returns the exit code.
func Run(argv []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	log := console.New(stderr)

	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	leadingPos, flagArgs := splitLeadingPositionals(args)

	var fv flagValues
	fs := newFlagSet(&fv, stderr)

	argsToParse := args
	if len(leadingPos) > 0 {
		argsToParse = flagArgs
	}
	if err := fs.Parse(argsToParse); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		writeHelp(stderr)
		log.Error(fmt.Sprintf("failed to parse flags: %v", err))
		return exitUsage
	}

	if fv.version {
		_, _ = fmt.Fprintf(stdout, "snapctx %s\n", Version)
		return exitOK
	}

	positionals := append(leadingPos, fs.Args()...)
	if len(positionals) > 1 {
		log.Error("unexpected extra arguments: " + strings.Join(positionals[1:], " "))
		writeHelp(stderr)
		return exitUsage
	}
	rootPath := "."
	if len(positionals) == 1 {
		rootPath = positionals[0]
	}
	rootPath = resolveRootPathFromInvocation(rootPath)

	settings, err := loadSettings(rootPath)
	if err != nil {
		log.Error(err.Error())
		return exitCodeFor(err)
	}
	settings = applyFlags(settings, fs, &fv)

	level, ok := console.ParseLevel(settings.LogLevel)
	if !ok {
		log.Warn("unknown log level " + strconv.Quote(settings.LogLevel) + ", using info")
	}
	if fv.verbose {
		level = console.LevelDebug
	}
	log = log.WithLevel(level)

	ctr := wiring.New(wiring.Options{Log: log, Stdin: stdin, Stdout: stdout})

	ignoreNames, ignoreGlobs := splitIgnores(settings.Ignore)
	ignoreNames = dedupeStrings(ignoreNames)
	ignoreGlobs = dedupeStrings(ignoreGlobs)

	outputDir := strings.TrimSpace(settings.OutputDir)
	if outputDir != "" {
		outputDir = resolveRootPathFromInvocation(outputDir)
	}

	res, err := ctr.Snapshot.Generate(snapapp.GenerateRequest{
		RootPath:        rootPath,
		OutputDir:       outputDir,
		MaxFileBytes:    settings.MaxFileBytes,
		IgnoreNames:     ignoreNames,
		IgnoreGlobs:     ignoreGlobs,
		FollowSymlinks:  settings.FollowSymlinks,
		UseIgnoreFiles:  settings.IgnoreFiles,
		BatchMode:       settings.BatchMode,
		Prompt:          fv.prompt,
		CopyToClipboard: fv.copy,
		OnWritten: func(outputPath string) error {
			_, err := fmt.Fprintf(stdout, "Summary written to: %s\n", outputPath)
			return err
		},
	})
	if err != nil {
		log.Error(err.Error())
		return exitCodeFor(err)
	}

	if fv.jsonOut != "" {
		jsonPath := resolveRootPathFromInvocation(fv.jsonOut)
		if err := os.WriteFile(jsonPath, []byte(res.ReportJSON+"\n"), 0o644); err != nil {
			log.Error(fmt.Sprintf("failed writing --json-out: %v", err))
			return exitError
		}
	}

	if fv.showSummary {
		log.Info("root: " + res.Root.Path)
		log.Info("type: " + res.Type.String())
		log.Info("files scanned: " + strconv.Itoa(res.Report.FilesScanned) + ", included: " + strconv.Itoa(res.Report.FilesIncluded))
		if n := len(res.Report.Warnings); n > 0 {
			log.Info("warnings: " + strconv.Itoa(n) + " (see --json-out or -v)")
		}
		if fv.copy {
			log.Info("clipboard copied: " + strconv.FormatBool(res.Copied))
		}
		if len(ignoreNames) > 0 {
			log.Info("ignore names: " + strings.Join(ignoreNames, ", "))
		}
		if len(ignoreGlobs) > 0 {
			log.Info("ignore globs: " + strings.Join(ignoreGlobs, ", "))
		}
	}

	return exitOK
}

func newFlagSet(fv *flagValues, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("snapctx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&fv.batchMode, "batch-mode", false, "Do not ask for an LLM prompt after writing the snapshot.")
	fs.StringVar(&fv.prompt, "prompt", "", "Append this prompt without asking.")
	fs.BoolVar(&fv.followSymlinks, "follow-symlinks", false, "Follow symbolic links to files and directories.")
	fs.BoolVar(&fv.noIgnoreFiles, "no-ignore-files", false, "Do not honor .gitignore/.ignore files.")
	fs.Var(&fv.ignores, "ignore", "Directory name or path/glob to ignore (repeatable).")
	fs.Var(&fv.ignores, "I", "Alias for --ignore (repeatable).")
	fs.Int64Var(&fv.maxFileBytes, "max-file-bytes", config.DefaultMaxFileBytes, "Omit contents of files larger than this many bytes.")
	fs.StringVar(&fv.outputDir, "output-dir", "", "Write the snapshot here instead of the project root.")
	fs.StringVar(&fv.jsonOut, "json-out", "", "Write JSON report to this path (optional).")
	fs.BoolVar(&fv.copy, "copy", false, "Best-effort: also copy the snapshot to the clipboard.")
	fs.BoolVar(&fv.showSummary, "show-summary", true, "Print a brief summary to stderr.")
	fs.BoolVar(&fv.verbose, "verbose", false, "Log skipped entries and diagnostics.")
	fs.BoolVar(&fv.verbose, "v", false, "Alias for --verbose.")
	fs.BoolVar(&fv.version, "version", false, "Print the version and exit.")
	fs.Usage = func() { writeHelp(stderr) }
	return fs
}

// loadSettings layers defaults < project file < environment (.env included).
func loadSettings(rootPath string) (config.Settings, error) {
	s := config.Defaults()

	if err := config.LoadDotEnv(invocationCWD()); err != nil {
		return s, err
	}

	if st, err := os.Stat(rootPath); err == nil && st.IsDir() {
		pf, _, found, err := config.LoadProjectFile(rootPath)
		if err != nil {
			return s, err
		}
		if found {
			s = s.ApplyProjectFile(pf)
		}
	}

	return s.ApplyEnv(os.LookupEnv)
}

// applyFlags overlays only the flags that were set explicitly.
func applyFlags(s config.Settings, fs *flag.FlagSet, fv *flagValues) config.Settings {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "batch-mode":
			s.BatchMode = fv.batchMode
		case "follow-symlinks":
			s.FollowSymlinks = fv.followSymlinks
		case "no-ignore-files":
			s.IgnoreFiles = !fv.noIgnoreFiles
		case "max-file-bytes":
			if fv.maxFileBytes > 0 {
				s.MaxFileBytes = fv.maxFileBytes
			}
		case "output-dir":
			s.OutputDir = fv.outputDir
		}
	})
	s.Ignore = append(append([]string(nil), s.Ignore...), fv.ignores.values...)
	return s
}

func exitCodeFor(err error) int {
	if errors.IsUsage(err) {
		return exitUsage
	}
	return exitError
}

// splitIgnores separates plain directory names (matched against every path
// component) from paths and globs (matched against root-relative paths).
func splitIgnores(items []string) (ignoreNames []string, ignoreGlobs []string) {
	normalize := func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" {
			return ""
		}
		s = strings.ReplaceAll(s, "\\", "/")
		for strings.HasPrefix(s, "./") {
			s = strings.TrimPrefix(s, "./")
		}
		s = strings.TrimPrefix(s, "/")
		for strings.HasSuffix(s, "/") {
			s = strings.TrimSuffix(s, "/")
		}
		return strings.TrimSpace(s)
	}

	for _, raw := range items {
		s := normalize(raw)
		if s == "" {
			continue
		}

		if glob.HasMeta(s) || strings.Contains(s, "/") {
			ignoreGlobs = append(ignoreGlobs, s)
			// A bare directory path also hides everything beneath it.
			if !strings.HasSuffix(s, "/**") {
				ignoreGlobs = append(ignoreGlobs, s+"/**")
			}
			continue
		}
		ignoreNames = append(ignoreNames, s)
	}

	return ignoreNames, ignoreGlobs
}

func isFlagToken(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "-") && s != "-" && s != "--"
}

func invocationCWD() string {
	// A wrapper that changes directories before running snapctx can preserve
	// the caller's working directory in SNAPCTX_CALLER_PWD.
	if v := strings.TrimSpace(os.Getenv(config.EnvCallerPWD)); v != "" {
		if abs, err := filepath.Abs(v); err == nil {
			return abs
		}
		return v
	}

	if cwd, err := os.Getwd(); err == nil && strings.TrimSpace(cwd) != "" {
		return cwd
	}
	return "."
}

// resolveRootPathFromInvocation interprets relative paths against the invocation CWD.
func resolveRootPathFromInvocation(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return invocationCWD()
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(invocationCWD(), p))
}

// splitLeadingPositionals splits argv into:
// - positionals: all leading tokens until the first flag token
// - flagArgs: remaining tokens (starting at first flag token)
func splitLeadingPositionals(argv []string) (positionals []string, flagArgs []string) {
	for i := 0; i < len(argv); i++ {
		if argv[i] == "--" {
			positionals = append(positionals, argv[i+1:]...)
			return positionals, nil
		}
		if isFlagToken(argv[i]) {
			return positionals, argv[i:]
		}
		positionals = append(positionals, argv[i])
	}
	return positionals, nil
}

func dedupeStrings(xs []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" || seen[x] {
			continue
		}
		seen[x] = true
		out = append(out, x)
	}
	return out
}

func writeHelp(w io.Writer) {
	help := strings.TrimSpace(`
snapctx - write a Markdown snapshot of a project for LLM context

Usage:
  snapctx [flags] [project_path]
  snapctx [project_path] [flags]

Writes <name>_snapshot_<YYYYMMDD_HHMMSS>.md into the project root containing
the directory tree and the contents of every non-ignored file.

Flags:
  --batch-mode                Do not ask for an LLM prompt after writing.
  --prompt TEXT               Append TEXT as the LLM prompt without asking.
  --follow-symlinks           Follow symbolic links (off by default).
  --no-ignore-files           Do not honor .gitignore/.ignore files.
  --ignore X / -I X           Ignore directory name OR path/glob (repeatable).
                              Examples:
                                --ignore fixtures
                                --ignore docs/generated
                                --ignore '**/*.snap'
  --max-file-bytes N          Omit contents of files larger than N bytes (default: 1500000).
  --output-dir DIR            Write the snapshot to DIR instead of the project root.
  --json-out PATH             Write JSON report to PATH (optional).
  --copy                      Best-effort: copy the snapshot to the clipboard.
  --show-summary=true|false   Print a brief summary to stderr (default: true).
  -v, --verbose               Log skipped entries and diagnostics.
  --version                   Print the version and exit.

Configuration (lowest to highest precedence):
  defaults < .snapctx.yaml in the project root < SNAPCTX_* environment
  (a .env in the invocation directory is loaded) < flags.

Always ignored: VCS metadata, dependency and build output directories,
bytecode caches, hidden files, and earlier snapshots of the same project.
`)
	_, _ = io.WriteString(w, help+"\n")
}
