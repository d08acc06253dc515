package glob

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Match checks if a POSIX-style relPath matches a glob pattern supporting *, **, ?, [...] and {a,b}.
// - *  matches within a path segment (no '/')
// - ** matches zero or more directories
// - ?  matches a single non-separator character
// Malformed patterns never match.
func Match(relPath string, pattern string) bool {
	rel := strings.TrimPrefix(filepath.ToSlash(relPath), "./")
	pat := strings.TrimPrefix(filepath.ToSlash(pattern), "./")
	ok, err := doublestar.Match(pat, rel)
	if err != nil {
		return false
	}
	return ok
}

// MatchAny reports whether relPath matches at least one non-empty pattern.
func MatchAny(relPath string, patterns []string) bool {
	for _, pat := range patterns {
		if strings.TrimSpace(pat) == "" {
			continue
		}
		if Match(relPath, pat) {
			return true
		}
	}
	return false
}

// Valid reports whether pattern is well-formed.
func Valid(pattern string) bool {
	return doublestar.ValidatePattern(filepath.ToSlash(pattern))
}

// HasMeta reports whether s contains glob metacharacters.
func HasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Escape quotes metacharacters so s matches only itself.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
