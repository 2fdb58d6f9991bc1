// Package manifest keeps the version of the packaged manifest in line with
// the project manifest.
package manifest

import (
	"reflect"

	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/arthur-debert/ccsync/pkg/filesystem"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Outcome tags the result of a reconciliation
type Outcome string

const (
	// OutcomeUpdated means the target version was rewritten
	OutcomeUpdated Outcome = "updated"
	// OutcomeUnchanged means both versions already matched
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeMissing means one of the manifests does not exist; nothing was done
	OutcomeMissing Outcome = "missing"
	// OutcomeSourceUnversioned means the source has no version to copy
	OutcomeSourceUnversioned Outcome = "source_unversioned"
	// OutcomeParseError means one of the manifests is not a JSON object
	OutcomeParseError Outcome = "parse_error"
	// OutcomeIOError means a manifest could not be read or written
	OutcomeIOError Outcome = "io_error"
)

// Result describes what Reconcile did
type Result struct {
	Outcome Outcome `json:"outcome"`
	Source  string  `json:"source"`
	Target  string  `json:"target"`
	// From is the previous target version, To the source version. Nil when absent.
	From any `json:"from,omitempty"`
	To   any `json:"to,omitempty"`
}

// Fatal reports whether the outcome should abort a sync
func (r Result) Fatal() bool {
	return r.Outcome == OutcomeParseError || r.Outcome == OutcomeIOError
}

// Reconciler copies the source manifest version into the target manifest
type Reconciler struct {
	fs     afero.Fs
	dryRun bool
	logger zerolog.Logger
}

// NewReconciler creates a reconciler
func NewReconciler(fsys afero.Fs, dryRun bool) *Reconciler {
	return &Reconciler{
		fs:     fsys,
		dryRun: dryRun,
		logger: logging.GetLogger("manifest"),
	}
}

// Reconcile sets the target's version to the source's when they differ.
// Only the version field is written; everything else in the target stays.
// A missing manifest is not an error. Parse and I/O failures are returned
// together with a Result carrying the matching outcome.
func (r *Reconciler) Reconcile(src, dst string) (Result, error) {
	res := Result{Source: src, Target: dst}

	if !filesystem.IsFile(r.fs, src) || !filesystem.IsFile(r.fs, dst) {
		r.logger.Warn().
			Str("source", src).
			Str("target", dst).
			Msg("Manifest files not found, version not updated")
		res.Outcome = OutcomeMissing
		return res, nil
	}

	source, err := r.load(src)
	if err != nil {
		res.Outcome = outcomeFor(err)
		return res, err
	}
	target, err := r.load(dst)
	if err != nil {
		res.Outcome = outcomeFor(err)
		return res, err
	}

	to, hasTo := source.Version()
	from, _ := target.Version()
	res.From, res.To = from, to

	if reflect.DeepEqual(from, to) {
		r.logger.Debug().Interface("version", to).Msg("Manifest versions match")
		res.Outcome = OutcomeUnchanged
		return res, nil
	}

	if !hasTo {
		r.logger.Warn().
			Str("source", src).
			Interface("targetVersion", from).
			Msg("Source manifest has no version, target left unchanged")
		res.Outcome = OutcomeSourceUnversioned
		return res, nil
	}

	raw, _ := source.Raw(VersionKey)
	target.SetRaw(VersionKey, raw)
	data, err := target.Marshal()
	if err != nil {
		res.Outcome = OutcomeIOError
		return res, errors.Wrapf(err, errors.ErrManifestWrite, "failed to encode %s", dst)
	}

	if r.dryRun {
		r.logger.Info().Str("target", dst).Interface("version", to).Msg("Dry run mode - version would be updated")
	} else if err := filesystem.WriteFile(r.fs, dst, data); err != nil {
		res.Outcome = OutcomeIOError
		return res, errors.Wrapf(err, errors.ErrManifestWrite, "failed to write %s", dst).
			WithDetail("path", dst)
	} else {
		r.logger.Info().Str("target", dst).Interface("version", to).Msg("Manifest version updated")
	}

	res.Outcome = OutcomeUpdated
	return res, nil
}

func (r *Reconciler) load(path string) (*Document, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to read %s", path).
			WithDetail("path", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "invalid JSON in %s", path).
			WithDetail("path", path)
	}
	return doc, nil
}

func outcomeFor(err error) Outcome {
	if errors.IsErrorCode(err, errors.ErrManifestParse) {
		return OutcomeParseError
	}
	return OutcomeIOError
}
