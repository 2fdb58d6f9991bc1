// Package stage adds the packaging output to the git index.
//
// Two backends exist: ExecStager shells out to the git binary, GoGitStager
// writes the index in-process with go-git. Callers normally go through
// StageOutput, which logs a failure instead of returning it.
package stage

import (
	"context"

	"github.com/arthur-debert/ccsync/pkg/config"
	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/rs/zerolog"
)

// Stager stages a path, relative to the project root or absolute
type Stager interface {
	Stage(ctx context.Context, path string) error
}

// FromConfig returns the stager selected by stage.backend
func FromConfig(cfg *config.Config) (Stager, error) {
	switch cfg.Stage.Backend {
	case config.BackendExec:
		return NewExecStager(cfg.Stage.Command, cfg.Root, cfg.DryRun), nil
	case config.BackendGoGit:
		return NewGoGitStager(cfg.Root, cfg.DryRun), nil
	default:
		return nil, errors.Newf(errors.ErrConfigInvalid, "unknown stage backend %q", cfg.Stage.Backend)
	}
}

// StageOutput stages path and reports success. Failures are logged as
// errors and never returned, so a failed staging does not fail the sync.
func StageOutput(ctx context.Context, s Stager, path string, logger zerolog.Logger) bool {
	if err := s.Stage(ctx, path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to stage changes")
		return false
	}
	logger.Info().Str("path", path).Msg("Changes staged")
	return true
}
