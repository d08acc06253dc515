package adapters

import (
	"os"
	"strings"

	project "github.com/snapctx/snapctx/internal/contracts/v1/project"
	"github.com/snapctx/snapctx/internal/domains/repo/domain"
)

// OSClassifier tags a root by the first marker file found directly under it.
type OSClassifier struct {
	rules []domain.MarkerRule
}

// NewOSClassifier copies rules; nil means domain.DefaultMarkerRules().
// Markers must be plain basenames; others are dropped.
func NewOSClassifier(rules []domain.MarkerRule) OSClassifier {
	if rules == nil {
		rules = domain.DefaultMarkerRules()
	}
	kept := make([]domain.MarkerRule, 0, len(rules))
	for _, r := range rules {
		m := strings.TrimSpace(r.Marker)
		if m == "" || m == "." || m == ".." || strings.ContainsAny(m, `/\`) {
			continue
		}
		kept = append(kept, domain.MarkerRule{Type: r.Type, Marker: m})
	}
	return OSClassifier{rules: kept}
}

func (c OSClassifier) Classify(root domain.ProjectRoot) domain.ProjectType {
	t, _ := c.match(root)
	return t
}

func (c OSClassifier) Profile(root domain.ProjectRoot) project.ProjectProfileV1 {
	t, marker := c.match(root)
	return project.ProjectProfileV1{
		RootPath: root.Path,
		Name:     root.Name,
		Type:     t.String(),
		Marker:   marker,
	}
}

// match never fails: a marker that cannot be stat'd counts as absent.
func (c OSClassifier) match(root domain.ProjectRoot) (domain.ProjectType, string) {
	for _, r := range c.rules {
		info, err := os.Stat(root.Join(r.Marker))
		if err != nil || info.IsDir() {
			continue
		}
		return r.Type, r.Marker
	}
	return domain.Unknown, ""
}
