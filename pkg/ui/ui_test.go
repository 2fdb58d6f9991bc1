package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/arthur-debert/ccsync/pkg/manifest"
	"github.com/arthur-debert/ccsync/pkg/orchestration"
	"github.com/arthur-debert/ccsync/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report() *orchestration.Report {
	return &orchestration.Report{
		Files: []orchestration.FileResult{
			{Source: "/p/api.py", Target: "/p/cc/x/api.py", Action: orchestration.ActionCopied},
			{Source: "/p/sync_components.py", Target: "/p/cc/x/sync_components.py", Action: orchestration.ActionExcluded, Rule: "sync_components.py"},
		},
		Manifest: manifest.Result{Outcome: manifest.OutcomeUpdated, From: "1.1.0", To: "1.2.0"},
		DryRun:   true,
		Stage:    &orchestration.StageResult{Path: "custom_components", Backend: "exec", Staged: true},
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{"create terminal renderer", ui.FormatTerminal, false},
		{"create text renderer", ui.FormatText, false},
		{"create json renderer", ui.FormatJSON, false},
		{"create auto renderer with buffer", ui.FormatAuto, false},
		{"invalid format", ui.Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := ui.NewRenderer(tt.format, &bytes.Buffer{})

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, renderer)
			}
		})
	}
}

func TestRenderReport(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			renderer, err := ui.NewRenderer(format, &buf)
			require.NoError(t, err)

			require.NoError(t, renderer.RenderResult(report()))

			out := buf.String()
			assert.Contains(t, out, "api.py")
			assert.Contains(t, out, "cc/x/api.py")
			assert.Contains(t, out, "excluded")
			assert.Contains(t, out, "1 copied, 0 unchanged, 1 excluded")
			assert.Contains(t, out, "1.1.0 -> 1.2.0")
			assert.Contains(t, out, "staged custom_components")
			assert.Contains(t, out, "DRY RUN MODE")
		})
	}
}

func TestRenderReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(report()))

	var decoded struct {
		Files []struct {
			Source string `json:"source"`
			Action string `json:"action"`
			Rule   string `json:"rule"`
		} `json:"files"`
		Manifest struct {
			Outcome string `json:"outcome"`
			To      string `json:"to"`
		} `json:"manifest"`
		DryRun bool `json:"dryRun"`
		Stage  struct {
			Staged bool `json:"staged"`
		} `json:"stage"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Files, 2)
	assert.Equal(t, "excluded", decoded.Files[1].Action)
	assert.Equal(t, "sync_components.py", decoded.Files[1].Rule)
	assert.Equal(t, "updated", decoded.Manifest.Outcome)
	assert.Equal(t, "1.2.0", decoded.Manifest.To)
	assert.True(t, decoded.DryRun)
	assert.True(t, decoded.Stage.Staged)
}

func TestRenderErrorAndMessage(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			renderer, err := ui.NewRenderer(format, &buf)
			require.NoError(t, err)

			require.NoError(t, renderer.RenderError(stderrors.New("boom")))
			require.NoError(t, renderer.RenderMessage("hello"))

			assert.Contains(t, buf.String(), "boom")
			assert.Contains(t, buf.String(), "hello")
		})
	}
}

func TestRenderStageResult(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(&orchestration.StageResult{Path: "custom_components", Backend: "gogit"}))

	assert.Equal(t, "staging custom_components failed (gogit), see the log\n", buf.String())
}

func TestRenderError_JSONCarriesCode(t *testing.T) {
	var buf bytes.Buffer
	renderer, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	syncErr := errors.Wrapf(stderrors.New("unexpected EOF"), errors.ErrManifestParse, "invalid JSON in %s", "manifest.json").
		WithDetail("path", "manifest.json")
	require.NoError(t, renderer.RenderError(syncErr))

	var decoded struct {
		Error struct {
			Code    string            `json:"code"`
			Message string            `json:"message"`
			Cause   string            `json:"cause"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "MANIFEST_PARSE", decoded.Error.Code)
	assert.Equal(t, "invalid JSON in manifest.json", decoded.Error.Message)
	assert.Equal(t, "unexpected EOF", decoded.Error.Cause)
	assert.Equal(t, "manifest.json", decoded.Error.Details["path"])

	buf.Reset()
	require.NoError(t, renderer.RenderError(stderrors.New("boom")))
	assert.JSONEq(t, `{"error": {"code": "UNKNOWN", "message": "boom"}}`, buf.String())
}
