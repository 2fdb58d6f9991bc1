// Package commands provides high-level command implementations for ccsync.
//
// This package is the layer between the CLI and the sync machinery. It loads
// the configuration for a project root and drives the orchestration, staging
// and config rendering packages.
//
// Each command is implemented in its own subdirectory:
//   - syncproject/ - SyncProject command
//   - stageoutput/ - StageOutput command
//   - genconfig/   - GenConfig command
//   - internal/    - Shared configuration and backend setup
package commands

import (
	"context"

	"github.com/arthur-debert/ccsync/pkg/commands/genconfig"
	"github.com/arthur-debert/ccsync/pkg/commands/internal"
	"github.com/arthur-debert/ccsync/pkg/commands/stageoutput"
	"github.com/arthur-debert/ccsync/pkg/commands/syncproject"
	"github.com/arthur-debert/ccsync/pkg/orchestration"
)

// Options are the inputs shared by every command.
type Options = internal.Options

// SyncProject copies the project into its packaging directory.
type SyncProjectOptions = syncproject.SyncProjectOptions

func SyncProject(ctx context.Context, opts SyncProjectOptions) (*orchestration.Report, error) {
	return syncproject.SyncProject(ctx, opts)
}

// StageOutput stages the packaging directory in git.
type StageOutputOptions = stageoutput.StageOutputOptions

func StageOutput(ctx context.Context, opts StageOutputOptions) (*orchestration.StageResult, error) {
	return stageoutput.StageOutput(ctx, opts)
}

// GenConfig renders the effective configuration.
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfigResult is returned by GenConfig.
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
