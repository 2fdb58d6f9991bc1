package stage

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/rs/zerolog"
)

// ExecStager runs "<command> add <path>" in the project root
type ExecStager struct {
	command string
	dir     string
	dryRun  bool
	logger  zerolog.Logger
}

// NewExecStager creates a stager that invokes command (usually "git")
func NewExecStager(command, dir string, dryRun bool) *ExecStager {
	return &ExecStager{
		command: command,
		dir:     dir,
		dryRun:  dryRun,
		logger:  logging.GetLogger("stage.exec"),
	}
}

// Stage blocks until the command exits. A non-zero exit is returned as an
// ErrStage error carrying the exit code and stderr.
func (s *ExecStager) Stage(ctx context.Context, path string) error {
	args := []string{"add", path}
	logging.LogCommand(s.command, args)

	if s.dryRun {
		s.logger.Info().Str("command", s.command).Strs("args", args).Msg("Dry run mode - command would be executed")
		return nil
	}

	cmd := exec.CommandContext(ctx, s.command, args...)
	cmd.Dir = s.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.Len() > 0 {
		s.logger.Debug().Str("output", stdout.String()).Msg("Command stdout")
	}
	if stderr.Len() > 0 {
		s.logger.Debug().Str("output", stderr.String()).Msg("Command stderr")
	}

	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return errors.Wrapf(err, errors.ErrStage, "%s %s failed", s.command, strings.Join(args, " ")).
			WithDetail("exitCode", exitCode).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}
