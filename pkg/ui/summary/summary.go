// Package summary turns sync reports into the lines shown to users. The
// text and terminal renderers share it so both show the same facts.
package summary

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ccsync/pkg/manifest"
	"github.com/arthur-debert/ccsync/pkg/orchestration"
)

// Row is one file of a report, ready for display
type Row struct {
	Action orchestration.Action
	Source string
	Target string
	Note   string
}

// Rows returns one row per file. Paths are shown relative to base when
// possible; base is usually the common root of the report.
func Rows(r *orchestration.Report, base string) []Row {
	rows := make([]Row, 0, len(r.Files))
	for _, f := range r.Files {
		row := Row{
			Action: f.Action,
			Source: Relative(base, f.Source),
			Target: Relative(base, f.Target),
		}
		if f.Rule != "" {
			row.Note = fmt.Sprintf("matches %q", f.Rule)
		}
		rows = append(rows, row)
	}
	return rows
}

// Base returns the deepest directory containing every source in r
func Base(r *orchestration.Report) string {
	var base string
	for _, f := range r.Files {
		dir := filepath.Dir(f.Source)
		if base == "" {
			base = dir
			continue
		}
		for base != dir && !strings.HasPrefix(dir, base+string(filepath.Separator)) {
			parent := filepath.Dir(base)
			if parent == base {
				break
			}
			base = parent
		}
	}
	return base
}

// Relative returns path relative to base, or path when that fails
func Relative(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// Totals is the one-line count of file actions
func Totals(r *orchestration.Report) string {
	parts := []string{
		fmt.Sprintf("%d copied", r.Count(orchestration.ActionCopied)),
		fmt.Sprintf("%d unchanged", r.Count(orchestration.ActionUnchanged)),
		fmt.Sprintf("%d excluded", r.Count(orchestration.ActionExcluded)),
	}
	if n := r.Count(orchestration.ActionPreserved); n > 0 {
		parts = append(parts, fmt.Sprintf("%d preserved", n))
	}
	return strings.Join(parts, ", ")
}

// Manifest describes the reconciliation outcome
func Manifest(res manifest.Result) string {
	switch res.Outcome {
	case manifest.OutcomeUpdated:
		return fmt.Sprintf("manifest version %v -> %v", display(res.From), display(res.To))
	case manifest.OutcomeUnchanged:
		return fmt.Sprintf("manifest version %v already current", display(res.To))
	case manifest.OutcomeMissing:
		return "manifest files not found, version not updated"
	case manifest.OutcomeSourceUnversioned:
		return "source manifest has no version, target left unchanged"
	case manifest.OutcomeParseError:
		return "manifest is not valid JSON"
	case manifest.OutcomeIOError:
		return "manifest could not be read or written"
	default:
		return "manifest not reconciled"
	}
}

// Stage describes the staging step, or "" when none ran
func Stage(s *orchestration.StageResult) string {
	if s == nil {
		return ""
	}
	if s.Staged {
		return fmt.Sprintf("staged %s (%s)", s.Path, s.Backend)
	}
	return fmt.Sprintf("staging %s failed (%s), see the log", s.Path, s.Backend)
}

// Warning reports whether the manifest outcome deserves attention
func Warning(res manifest.Result) bool {
	return res.Outcome == manifest.OutcomeMissing || res.Outcome == manifest.OutcomeSourceUnversioned || res.Fatal()
}

func display(v any) any {
	if v == nil {
		return "(none)"
	}
	return v
}
