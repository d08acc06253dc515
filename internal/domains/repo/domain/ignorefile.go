package domain

import (
	"path"
	"strings"

	ignore "github.com/Sriram-PR/go-ignore"
)

// IgnoreRules evaluates the .gitignore-style files met during one scan.
//
// Rule files are registered by the directory holding them, expressed relative
// to the outermost directory that contributed rules (the repository top when
// the project root sits inside one). Ignored takes project-root-relative
// paths and rebases them onto that directory, so parent rule files anchor
// exactly as git anchors them. Files registered later take precedence over
// earlier ones, which gives deeper files priority when registered top-down.
//
// A nil *IgnoreRules ignores nothing.
type IgnoreRules struct {
	rootBase string
	files    int

	add   func(base string, content []byte)
	match func(p string, isDir bool) bool
}

// NewIgnoreRules returns an empty rule set for a project root located at
// rootBase (POSIX, "" or "." for the outermost directory itself).
func NewIgnoreRules(rootBase string) *IgnoreRules {
	m := ignore.New()
	return &IgnoreRules{
		rootBase: cleanBase(rootBase),
		add:      func(base string, content []byte) { m.AddPatterns(base, content) },
		match:    m.Match,
	}
}

// Base maps a project-root-relative directory to the base Add expects.
func (r *IgnoreRules) Base(dirRel string) string {
	return cleanBase(path.Join(r.rootBase, cleanBase(dirRel)))
}

// Add registers the content of one rule file found in directory base.
func (r *IgnoreRules) Add(base string, content []byte) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return
	}
	r.add(cleanBase(base), content)
	r.files++
}

// Len is the number of non-empty rule files registered.
func (r *IgnoreRules) Len() int {
	if r == nil {
		return 0
	}
	return r.files
}

// Ignored reports whether rel (project-root-relative, POSIX) is excluded.
func (r *IgnoreRules) Ignored(rel string, isDir bool) bool {
	if r == nil || r.files == 0 {
		return false
	}
	return r.match(path.Join(r.rootBase, cleanBase(rel)), isDir)
}

func cleanBase(p string) string {
	p = strings.Trim(p, "/")
	if p == "" || p == "." {
		return ""
	}
	return path.Clean(p)
}
