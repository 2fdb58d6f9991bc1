package stageoutput

import (
	"context"

	"github.com/arthur-debert/ccsync/pkg/commands/internal"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/arthur-debert/ccsync/pkg/orchestration"
	"github.com/arthur-debert/ccsync/pkg/stage"
)

// StageOutputOptions defines the options for the StageOutput command.
type StageOutputOptions struct {
	internal.Options

	// Stager replaces the configured staging backend
	Stager stage.Stager
}

// StageOutput stages the packaging directory without syncing first.
// Unlike staging after a sync, a failure here is returned.
func StageOutput(ctx context.Context, opts StageOutputOptions) (*orchestration.StageResult, error) {
	log := logging.GetLogger("commands.stage")
	log.Debug().Str("command", "StageOutput").Msg("Executing command")

	cfg, err := internal.LoadConfig(opts.Options)
	if err != nil {
		return nil, err
	}

	stager, err := internal.Stager(cfg, opts.Stager)
	if err != nil {
		return nil, err
	}

	result := &orchestration.StageResult{
		Path:    cfg.StagePath(),
		Backend: cfg.Stage.Backend,
	}
	if err := stager.Stage(ctx, result.Path); err != nil {
		return result, err
	}
	result.Staged = true

	log.Info().Str("path", result.Path).Msg("Changes staged")
	return result, nil
}
