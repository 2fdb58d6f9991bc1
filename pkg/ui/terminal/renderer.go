// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ccsync/pkg/orchestration"
	"github.com/arthur-debert/ccsync/pkg/ui/styles"
	"github.com/arthur-debert/ccsync/pkg/ui/summary"
	"github.com/pterm/pterm"
)

// actionStyles maps file actions to style names
var actionStyles = map[orchestration.Action]string{
	orchestration.ActionCopied:    "Copied",
	orchestration.ActionUnchanged: "Unchanged",
	orchestration.ActionExcluded:  "Excluded",
	orchestration.ActionPreserved: "Preserved",
}

// Renderer draws reports as a pterm table with lipgloss styled cells
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *orchestration.Report:
		return r.renderReport(v)
	case *orchestration.StageResult:
		return r.renderStage(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderReport(report *orchestration.Report) error {
	rows := summary.Rows(report, summary.Base(report))

	if len(rows) > 0 {
		data := pterm.TableData{{"Action", "Source", "Target", ""}}
		for _, row := range rows {
			data = append(data, []string{
				styles.GetStyle(actionStyles[row.Action]).Render(string(row.Action)),
				styles.GetStyle("FilePath").Render(row.Source),
				row.Target,
				styles.GetStyle("Muted").Render(row.Note),
			})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.output, table); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(r.output, styles.GetStyle("Bold").Render(summary.Totals(report))); err != nil {
		return err
	}

	manifestStyle := "Success"
	if summary.Warning(report.Manifest) {
		manifestStyle = "Warning"
	}
	if _, err := fmt.Fprintln(r.output, styles.GetStyle(manifestStyle).Render(summary.Manifest(report.Manifest))); err != nil {
		return err
	}

	if report.Stage != nil {
		if err := r.renderStage(report.Stage); err != nil {
			return err
		}
	}

	if report.DryRun {
		if _, err := fmt.Fprintln(r.output, styles.GetStyle("Warning").Render("DRY RUN MODE - no files were written")); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderStage(s *orchestration.StageResult) error {
	style := "Success"
	if !s.Staged {
		style = "Error"
	}
	_, err := fmt.Fprintln(r.output, styles.GetStyle(style).Render(summary.Stage(s)))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}
