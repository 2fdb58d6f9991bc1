package orchestration

import (
	"github.com/arthur-debert/ccsync/pkg/manifest"
)

// Action is what happened to a single file
type Action string

const (
	// ActionCopied means the target was written (or would be, in dry-run mode)
	ActionCopied Action = "copied"
	// ActionUnchanged means the target already had the same content
	ActionUnchanged Action = "unchanged"
	// ActionExcluded means the deny-list rejected the file
	ActionExcluded Action = "excluded"
	// ActionPreserved means an existing target manifest was kept and only reconciled
	ActionPreserved Action = "preserved"
)

// FileResult records the handling of one source file
type FileResult struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Action Action `json:"action"`
	// Rule is the deny-list entry for excluded files
	Rule string `json:"rule,omitempty"`
}

// Report summarizes a sync run
type Report struct {
	Files    []FileResult    `json:"files"`
	Manifest manifest.Result `json:"manifest"`
	DryRun   bool            `json:"dryRun"`
	// Stage is set when staging was requested
	Stage *StageResult `json:"stage,omitempty"`
}

// StageResult records the staging step that follows a sync
type StageResult struct {
	Path    string `json:"path"`
	Backend string `json:"backend"`
	Staged  bool   `json:"staged"`
}

func (r *Report) add(res FileResult) {
	r.Files = append(r.Files, res)
}

// Count returns the number of files with the given action
func (r *Report) Count(a Action) int {
	n := 0
	for _, f := range r.Files {
		if f.Action == a {
			n++
		}
	}
	return n
}

// Targets returns the target paths of files with the given action
func (r *Report) Targets(a Action) []string {
	var out []string
	for _, f := range r.Files {
		if f.Action == a {
			out = append(out, f.Target)
		}
	}
	return out
}
