package stage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
)

// GoGitStager stages paths with go-git, without a git binary
type GoGitStager struct {
	root   string
	dryRun bool
	logger zerolog.Logger
}

// NewGoGitStager creates a stager for the repository containing root
func NewGoGitStager(root string, dryRun bool) *GoGitStager {
	return &GoGitStager{
		root:   root,
		dryRun: dryRun,
		logger: logging.GetLogger("stage.gogit"),
	}
}

// Stage adds path, recursively for directories, to the index
func (s *GoGitStager) Stage(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrStage, "staging cancelled")
	}

	repo, err := git.PlainOpenWithOptions(s.root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return errors.Wrapf(err, errors.ErrStage, "failed to open repository at %s", s.root)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return errors.Wrap(err, errors.ErrStage, "repository has no worktree")
	}

	rel, err := s.relativeTo(wt.Filesystem.Root(), path)
	if err != nil {
		return err
	}

	if s.dryRun {
		s.logger.Info().Str("path", rel).Msg("Dry run mode - path would be staged")
		return nil
	}

	s.logger.Debug().Str("worktree", wt.Filesystem.Root()).Str("path", rel).Msg("Adding to index")
	if err := wt.AddWithOptions(&git.AddOptions{Path: filepath.ToSlash(rel)}); err != nil {
		return errors.Wrapf(err, errors.ErrStage, "failed to add %s", rel).WithDetail("path", rel)
	}
	return nil
}

// relativeTo resolves path against the project root and returns it relative
// to the worktree root
func (s *GoGitStager) relativeTo(worktree, path string) (string, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(s.root, path)
	}

	rel, err := filepath.Rel(evalSymlinks(worktree), evalSymlinks(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrStage, "%s is outside the worktree %s", abs, worktree)
	}
	return rel, nil
}

// evalSymlinks resolves p as far as it exists
func evalSymlinks(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	dir, base := filepath.Split(filepath.Clean(p))
	if dir == "" || dir == p {
		return p
	}
	return filepath.Join(evalSymlinks(filepath.Clean(dir)), base)
}
