package domain

import (
	"sort"
	"strings"
)

// IgnoreRuleSet is an immutable set of literal path-component names. A path is
// ignored when any of its components is in the set.
type IgnoreRuleSet struct {
	names map[string]struct{}
}

// DefaultIgnoreNames covers VCS metadata, dependency and build output
// directories for the ecosystems the classifier knows about, and Python
// bytecode caches.
var DefaultIgnoreNames = []string{
	// vcs
	".git", ".hg", ".svn",
	// javascript
	"node_modules", "bower_components", ".next", ".nuxt",
	// rust / jvm
	"target",
	// generic build output
	"build", "dist", "out",
	// python
	"__pycache__", ".venv", "venv", ".tox", ".mypy_cache", ".pytest_cache", ".eggs",
}

// BytecodeSuffixes mark compiled artifacts that are never listed.
var BytecodeSuffixes = []string{".pyc", ".pyo", ".class"}

func NewIgnoreRuleSet(names ...string) IgnoreRuleSet {
	s := IgnoreRuleSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		s.names[n] = struct{}{}
	}
	return s
}

func DefaultIgnoreRuleSet() IgnoreRuleSet {
	return NewIgnoreRuleSet(DefaultIgnoreNames...)
}

// IsZero reports whether s was never constructed (as opposed to built empty).
func (s IgnoreRuleSet) IsZero() bool {
	return s.names == nil
}

// With returns a new set holding s's names plus extra.
func (s IgnoreRuleSet) With(extra ...string) IgnoreRuleSet {
	all := make([]string, 0, len(s.names)+len(extra))
	all = append(all, s.Names()...)
	all = append(all, extra...)
	return NewIgnoreRuleSet(all...)
}

func (s IgnoreRuleSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// MatchesAnyComponent reports whether any element of components is an ignored name.
func (s IgnoreRuleSet) MatchesAnyComponent(components []string) bool {
	if len(s.names) == 0 {
		return false
	}
	for _, c := range components {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

// Names returns the set's names sorted.
func (s IgnoreRuleSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// IsHiddenOrBytecode reports whether a basename is a dotfile or a compiled artifact.
func IsHiddenOrBytecode(base string) bool {
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, suf := range BytecodeSuffixes {
		if strings.HasSuffix(base, suf) {
			return true
		}
	}
	return false
}
