// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ccsync/pkg/orchestration"
	"github.com/arthur-debert/ccsync/pkg/ui/summary"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *orchestration.Report:
		return r.renderReport(v)
	case *orchestration.StageResult:
		_, err := fmt.Fprintln(r.output, summary.Stage(v))
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderReport(report *orchestration.Report) error {
	base := summary.Base(report)
	for _, row := range summary.Rows(report, base) {
		line := fmt.Sprintf("  %-10s %s -> %s", row.Action, row.Source, row.Target)
		if row.Note != "" {
			line += " (" + row.Note + ")"
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}

	lines := []string{
		"",
		summary.Totals(report),
		summary.Manifest(report.Manifest),
	}
	if s := summary.Stage(report.Stage); s != "" {
		lines = append(lines, s)
	}
	if report.DryRun {
		lines = append(lines, "DRY RUN MODE - no files were written")
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
