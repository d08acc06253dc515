package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
	"github.com/snapctx/snapctx/internal/domains/repo/domain"
	"github.com/snapctx/snapctx/internal/domains/repo/ports"
	"github.com/snapctx/snapctx/internal/platform/console"
	apperrors "github.com/snapctx/snapctx/internal/platform/errors"
	"github.com/snapctx/snapctx/internal/platform/glob"
	"github.com/snapctx/snapctx/internal/platform/paths"
)

// OSScanner lists regular files under a project root, depth-first, in
// lexical order within each directory.
type OSScanner struct {
	opts domain.ScanOptions
	log  console.Logger
}

func NewOSScanner(opts domain.ScanOptions, log console.Logger) *OSScanner {
	if opts.Ignore.IsZero() {
		opts.Ignore = domain.DefaultIgnoreRuleSet()
	}
	if opts.UseIgnoreFiles && len(opts.IgnoreFileNames) == 0 {
		opts.IgnoreFileNames = domain.DefaultIgnoreFileNames
	}
	return &OSScanner{opts: opts, log: log}
}

// NewOSScannerFactory adapts NewOSScanner to ports.ScannerFactory.
func NewOSScannerFactory(log console.Logger) ports.ScannerFactory {
	return func(opts domain.ScanOptions) ports.Scanner {
		return NewOSScanner(opts, log)
	}
}

func (s *OSScanner) Scan(root domain.ProjectRoot) (domain.ScanResult, error) {
	entries, err := os.ReadDir(root.Path)
	if err != nil {
		return domain.ScanResult{}, apperrors.NewTraversal(root.Path, err)
	}

	w := &walk{
		opts:    s.opts,
		log:     s.log,
		visited: map[string]bool{root.Path: true},
	}
	if s.opts.UseIgnoreFiles {
		w.seedIgnoreRules(root.Path)
		w.loadIgnoreFiles(root.Path, w.rules.Base(""))
	}
	w.dir(root.Path, "", entries)
	return w.res, nil
}

type walk struct {
	opts    domain.ScanOptions
	log     console.Logger
	visited map[string]bool // resolved directories, only consulted when following links
	rules   *domain.IgnoreRules
	res     domain.ScanResult
}

func (w *walk) dir(dirAbs string, dirRel string, entries []fs.DirEntry) {
	for _, entry := range entries {
		name := entry.Name()
		abs := filepath.Join(dirAbs, name)
		rel := path.Join(dirRel, name)

		if domain.IsHiddenOrBytecode(name) {
			w.log.Debug("skip hidden/bytecode: " + rel)
			continue
		}
		if w.opts.Ignore.MatchesAnyComponent(paths.Components(abs)) {
			w.log.Debug("skip ignored component: " + rel)
			continue
		}

		mode := entry.Type()
		isDir := entry.IsDir()
		isRegular := mode.IsRegular()
		var size int64 = -1

		if mode&fs.ModeSymlink != 0 {
			if !w.opts.FollowSymlinks {
				w.log.Debug("skip symlink: " + rel)
				continue
			}
			info, err := os.Stat(abs)
			if err != nil {
				w.warn(abs, "stat", err)
				continue
			}
			isDir = info.IsDir()
			isRegular = info.Mode().IsRegular()
			size = info.Size()
		}

		if glob.MatchAny(rel, w.opts.ExcludeGlobs) {
			w.log.Debug("skip excluded glob: " + rel)
			continue
		}
		if w.rules.Ignored(rel, isDir) {
			w.log.Debug("skip ignore-file match: " + rel)
			continue
		}

		if isDir {
			w.descend(abs, rel)
			continue
		}
		if !isRegular {
			continue
		}

		if size < 0 {
			info, err := entry.Info()
			if err != nil {
				w.warn(abs, "stat", err)
				continue
			}
			size = info.Size()
		}
		w.res.Files = append(w.res.Files, project.FileRefV1{
			AbsPath:   abs,
			RelPath:   rel,
			SizeBytes: size,
		})
	}
}

func (w *walk) descend(abs string, rel string) {
	if w.opts.FollowSymlinks {
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			w.warn(abs, "resolve", err)
			return
		}
		if w.visited[resolved] {
			w.log.Debug("skip already visited directory: " + rel)
			return
		}
		w.visited[resolved] = true
	}

	children, err := os.ReadDir(abs)
	if err != nil {
		w.warn(abs, "readdir", err)
		if len(children) == 0 {
			return
		}
	}
	if w.opts.UseIgnoreFiles {
		w.loadIgnoreFiles(abs, w.rules.Base(rel))
	}
	w.dir(abs, rel, children)
}

// seedIgnoreRules registers the rule files of the directories between the
// enclosing repository top and rootAbs, outermost first. Outside a repository
// only files at or below the root apply.
func (w *walk) seedIgnoreRules(rootAbs string) {
	top, ancestors := repositoryAncestors(rootAbs)
	rootBase, err := paths.ToPosixRel(top, rootAbs)
	if err != nil {
		top, ancestors, rootBase = rootAbs, nil, ""
	}
	w.rules = domain.NewIgnoreRules(rootBase)
	for _, dir := range ancestors {
		base, err := paths.ToPosixRel(top, dir)
		if err != nil {
			continue
		}
		w.loadIgnoreFiles(dir, base)
	}
}

func (w *walk) loadIgnoreFiles(dirAbs string, base string) {
	for _, name := range w.opts.IgnoreFileNames {
		p := filepath.Join(dirAbs, name)
		b, err := os.ReadFile(p)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				w.warn(p, "read ignore file", err)
			}
			continue
		}
		w.rules.Add(base, b)
	}
}

// repositoryAncestors walks up from rootAbs to the nearest directory holding
// a .git entry. It returns that directory and the strict ancestors of rootAbs
// up to and including it, outermost first. When rootAbs is the top itself or
// no repository encloses it, top is rootAbs and ancestors is empty.
func repositoryAncestors(rootAbs string) (top string, ancestors []string) {
	if hasGitEntry(rootAbs) {
		return rootAbs, nil
	}
	var chain []string
	for dir := filepath.Dir(rootAbs); ; dir = filepath.Dir(dir) {
		chain = append(chain, dir)
		if hasGitEntry(dir) {
			for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
				chain[i], chain[j] = chain[j], chain[i]
			}
			return dir, chain
		}
		if filepath.Dir(dir) == dir {
			return rootAbs, nil
		}
	}
}

// hasGitEntry accepts a directory or a file, which worktrees and submodules use.
func hasGitEntry(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, ".git"))
	return err == nil
}

func (w *walk) warn(abs string, op string, err error) {
	ew := domain.EntryWarning{Path: abs, Op: op, Err: err}
	w.res.Warnings = append(w.res.Warnings, ew)
	w.log.Warn(ew.String())
}
