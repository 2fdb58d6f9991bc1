package rules

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ccsync/pkg/config"
)

// Filter holds a deny-list anchored at a project root
type Filter struct {
	root string
	deny []string
}

// NewFilter creates a filter for paths under root
func NewFilter(root string, deny []string) *Filter {
	d := make([]string, 0, len(deny))
	for _, entry := range deny {
		// an empty entry would match every path
		if entry != "" {
			d = append(d, entry)
		}
	}
	return &Filter{root: root, deny: d}
}

// FromConfig builds the filter for the configured source root and deny-list
func FromConfig(cfg *config.Config) *Filter {
	return NewFilter(cfg.SourcePath(), cfg.ExcludeList())
}

// ShouldCopy reports whether path is allowed
func (f *Filter) ShouldCopy(path string) bool {
	return f.Match(path) == ""
}

// Match returns the first deny-list entry contained in the root-relative form
// of path, or "" when none is.
func (f *Filter) Match(path string) string {
	rel := f.relative(path)
	for _, entry := range f.deny {
		if strings.Contains(rel, entry) {
			return entry
		}
	}
	return ""
}

func (f *Filter) relative(path string) string {
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return path
	}
	return rel
}
