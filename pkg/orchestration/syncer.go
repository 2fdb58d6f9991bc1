// Package orchestration runs a complete sync: it enumerates the project
// files, filters and copies them into the packaging directory and then
// reconciles the manifest version.
//
// A run is best-effort. Files are written one at a time and an error stops
// the run where it happened; files copied before the error stay in place.
package orchestration

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/ccsync/pkg/config"
	"github.com/arthur-debert/ccsync/pkg/copier"
	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/arthur-debert/ccsync/pkg/filesystem"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/arthur-debert/ccsync/pkg/manifest"
	"github.com/arthur-debert/ccsync/pkg/rules"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const sourcePattern = "*.py"

// Syncer copies a project into its custom_components directory
type Syncer struct {
	cfg        *config.Config
	fs         afero.Fs
	filter     *rules.Filter
	copier     *copier.Copier
	reconciler *manifest.Reconciler
	logger     zerolog.Logger
}

// New creates a syncer. cfg must be validated.
func New(cfg *config.Config, fsys afero.Fs) *Syncer {
	return &Syncer{
		cfg:        cfg,
		fs:         fsys,
		filter:     rules.FromConfig(cfg),
		copier:     copier.FromConfig(fsys, cfg),
		reconciler: manifest.NewReconciler(fsys, cfg.DryRun),
		logger:     logging.GetLogger("orchestration"),
	}
}

// Run performs one sync pass
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	done := logging.LogOperationStart(s.logger, "sync")
	defer done()

	s.logger.Info().
		Str("source", s.cfg.SourcePath()).
		Str("target", s.cfg.TargetPath()).
		Bool("dryRun", s.cfg.DryRun).
		Msg("Starting synchronization")

	report := &Report{DryRun: s.cfg.DryRun}

	if err := s.ensureDir(s.cfg.TargetPath()); err != nil {
		return report, err
	}
	if err := s.ensureDir(s.cfg.ModuleTargetPath()); err != nil {
		return report, err
	}

	if err := s.copyMatching(ctx, s.cfg.SourcePath(), s.cfg.TargetPath(), report); err != nil {
		return report, err
	}

	if err := s.syncManifest(ctx, report); err != nil {
		return report, err
	}

	moduleSource := s.cfg.ModuleSourcePath()
	if s.cfg.ModuleDir != "" && filesystem.IsDir(s.fs, moduleSource) {
		if err := s.ensureDir(s.cfg.ModuleTargetPath()); err != nil {
			return report, err
		}
		if err := s.copyMatching(ctx, moduleSource, s.cfg.ModuleTargetPath(), report); err != nil {
			return report, err
		}
	} else {
		s.logger.Debug().Str("path", moduleSource).Msg("Module directory not found, skipping")
	}

	res, err := s.reconciler.Reconcile(s.cfg.SourceManifest(), s.cfg.TargetManifest())
	report.Manifest = res
	if err != nil {
		return report, err
	}

	s.logger.Info().
		Int("copied", report.Count(ActionCopied)).
		Int("unchanged", report.Count(ActionUnchanged)).
		Int("excluded", report.Count(ActionExcluded)).
		Str("manifest", string(res.Outcome)).
		Msg("Synchronization complete")

	return report, nil
}

// copyMatching copies every non-excluded *.py file of srcDir into dstDir
func (s *Syncer) copyMatching(ctx context.Context, srcDir, dstDir string, report *Report) error {
	files, err := filesystem.Glob(s.fs, filepath.Join(srcDir, sourcePattern))
	if err != nil {
		return errors.Wrapf(err, errors.ErrGlob, "failed to list %s", srcDir)
	}

	for _, src := range files {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "sync cancelled")
		}
		if err := s.copyOne(src, filepath.Join(dstDir, filepath.Base(src)), report); err != nil {
			return err
		}
	}
	return nil
}

// syncManifest handles the root *.json files; only the manifest is copied
func (s *Syncer) syncManifest(ctx context.Context, report *Report) error {
	files, err := filesystem.Glob(s.fs, filepath.Join(s.cfg.SourcePath(), "*.json"))
	if err != nil {
		return errors.Wrapf(err, errors.ErrGlob, "failed to list %s", s.cfg.SourcePath())
	}

	for _, src := range files {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "sync cancelled")
		}
		if filepath.Base(src) != s.cfg.ManifestName {
			continue
		}

		dst := s.cfg.TargetManifest()
		if rule := s.filter.Match(src); rule != "" {
			s.exclude(src, dst, rule, report)
			continue
		}

		if !s.cfg.Manifest.Overwrite && filesystem.IsFile(s.fs, dst) {
			s.logger.Debug().Str("target", dst).Msg("Keeping existing manifest, only the version is reconciled")
			report.add(FileResult{Source: src, Target: dst, Action: ActionPreserved})
			continue
		}

		if err := s.copyOne(src, dst, report); err != nil {
			return err
		}
	}
	return nil
}

func (s *Syncer) copyOne(src, dst string, report *Report) error {
	if rule := s.filter.Match(src); rule != "" {
		s.exclude(src, dst, rule, report)
		return nil
	}

	changed, err := s.copier.Copy(src, dst)
	if err != nil {
		return err
	}

	action := ActionUnchanged
	if changed {
		action = ActionCopied
	}
	report.add(FileResult{Source: src, Target: dst, Action: action})
	return nil
}

func (s *Syncer) exclude(src, dst, rule string, report *Report) {
	s.logger.Debug().Str("source", src).Str("rule", rule).Msg("Excluded")
	report.add(FileResult{Source: src, Target: dst, Action: ActionExcluded, Rule: rule})
}

func (s *Syncer) ensureDir(path string) error {
	if s.cfg.DryRun {
		if !filesystem.IsDir(s.fs, path) {
			s.logger.Info().Str("path", path).Msg("Dry run mode - directory would be created")
		}
		return nil
	}
	if err := filesystem.EnsureDir(s.fs, path); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", path).WithDetail("path", path)
	}
	return nil
}
