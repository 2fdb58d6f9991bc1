package syncproject

import (
	"context"

	"github.com/arthur-debert/ccsync/pkg/commands/internal"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/arthur-debert/ccsync/pkg/orchestration"
	"github.com/arthur-debert/ccsync/pkg/stage"
)

// SyncProjectOptions defines the options for the SyncProject command.
type SyncProjectOptions struct {
	internal.Options

	// Stager replaces the configured staging backend
	Stager stage.Stager
}

// SyncProject copies the project into its packaging directory, reconciles
// the manifest version and, when stage.enabled is set, stages the output.
// A failed staging is reported in the result but is not an error.
func SyncProject(ctx context.Context, opts SyncProjectOptions) (*orchestration.Report, error) {
	log := logging.GetLogger("commands.sync")
	log.Debug().Str("command", "SyncProject").Msg("Executing command")

	cfg, err := internal.LoadConfig(opts.Options)
	if err != nil {
		return nil, err
	}

	report, err := orchestration.New(cfg, internal.FileSystem(opts.FS)).Run(ctx)
	if err != nil {
		return report, err
	}

	if cfg.Stage.Enabled {
		stager, err := internal.Stager(cfg, opts.Stager)
		if err != nil {
			return report, err
		}
		report.Stage = &orchestration.StageResult{
			Path:    cfg.StagePath(),
			Backend: cfg.Stage.Backend,
			Staged:  stage.StageOutput(ctx, stager, cfg.StagePath(), log),
		}
	}

	log.Info().Str("command", "SyncProject").Msg("Command finished")
	return report, nil
}
