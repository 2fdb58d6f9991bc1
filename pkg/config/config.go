package config

import (
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/ccsync/pkg/errors"
)

// Stage backends
const (
	BackendExec  = "exec"
	BackendGoGit = "gogit"
)

// Manifest holds manifest handling options
type Manifest struct {
	// Overwrite replaces an existing target manifest with the source one before
	// the version is reconciled. When false only the version field is touched.
	Overwrite bool `koanf:"overwrite" toml:"overwrite" yaml:"overwrite"`
}

// Stage holds options for staging the output in git
type Stage struct {
	Enabled bool   `koanf:"enabled" toml:"enabled" yaml:"enabled"`
	Backend string `koanf:"backend" toml:"backend" yaml:"backend"`
	Command string `koanf:"command" toml:"command" yaml:"command"`
	Path    string `koanf:"path" toml:"path" yaml:"path"`
}

// Config is the main configuration structure
type Config struct {
	// Root is the project root. It is never read from files.
	Root string `koanf:"root" toml:"-" yaml:"-"`

	SourceDir    string   `koanf:"source_dir" toml:"source_dir" yaml:"source_dir"`
	TargetDir    string   `koanf:"target_dir" toml:"target_dir" yaml:"target_dir"`
	ModuleDir    string   `koanf:"module_dir" toml:"module_dir" yaml:"module_dir"`
	ManifestName string   `koanf:"manifest_name" toml:"manifest_name" yaml:"manifest_name"`
	StripPattern string   `koanf:"strip_pattern" toml:"strip_pattern" yaml:"strip_pattern"`
	Exclude      []string `koanf:"exclude" toml:"exclude" yaml:"exclude"`
	ExcludeExtra []string `koanf:"exclude_extra" toml:"exclude_extra" yaml:"exclude_extra"`
	DryRun       bool     `koanf:"dry_run" toml:"dry_run" yaml:"dry_run"`

	Manifest Manifest `koanf:"manifest" toml:"manifest" yaml:"manifest"`
	Stage    Stage    `koanf:"stage" toml:"stage" yaml:"stage"`

	stripRe *regexp.Regexp
}

// Validate checks the configuration and compiles the strip pattern
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New(errors.ErrConfigInvalid, "source_dir must not be empty")
	}
	if c.TargetDir == "" {
		return errors.New(errors.ErrConfigInvalid, "target_dir must not be empty")
	}
	if c.ManifestName == "" {
		return errors.New(errors.ErrConfigInvalid, "manifest_name must not be empty")
	}
	if filepath.Clean(c.SourcePath()) == filepath.Clean(c.TargetPath()) {
		return errors.Newf(errors.ErrConfigInvalid, "target_dir %q resolves to the source directory", c.TargetDir)
	}

	c.stripRe = nil
	if c.StripPattern != "" {
		re, err := regexp.Compile(c.StripPattern)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigInvalid, "invalid strip_pattern %q", c.StripPattern)
		}
		c.stripRe = re
	}

	switch c.Stage.Backend {
	case BackendExec:
		if c.Stage.Command == "" {
			return errors.New(errors.ErrConfigInvalid, "stage.command must not be empty for the exec backend")
		}
	case BackendGoGit:
	default:
		return errors.Newf(errors.ErrConfigInvalid, "unknown stage.backend %q (want %q or %q)",
			c.Stage.Backend, BackendExec, BackendGoGit)
	}
	if c.Stage.Path == "" {
		return errors.New(errors.ErrConfigInvalid, "stage.path must not be empty")
	}

	return nil
}

// StripRegexp returns the compiled strip pattern, or nil when stripping is disabled.
// Validate must have been called.
func (c *Config) StripRegexp() *regexp.Regexp {
	return c.stripRe
}

// ExcludeList returns the effective deny-list
func (c *Config) ExcludeList() []string {
	out := make([]string, 0, len(c.Exclude)+len(c.ExcludeExtra))
	out = append(out, c.Exclude...)
	out = append(out, c.ExcludeExtra...)
	return out
}

// SourcePath is the directory files are read from
func (c *Config) SourcePath() string { return c.resolve(c.SourceDir) }

// TargetPath is the packaging directory files are written to
func (c *Config) TargetPath() string { return c.resolve(c.TargetDir) }

// ModuleSourcePath is the module subdirectory inside the source
func (c *Config) ModuleSourcePath() string {
	return filepath.Join(c.SourcePath(), c.ModuleDir)
}

// ModuleTargetPath mirrors ModuleSourcePath under the target
func (c *Config) ModuleTargetPath() string {
	return filepath.Join(c.TargetPath(), c.ModuleDir)
}

// SourceManifest is the manifest path in the source directory
func (c *Config) SourceManifest() string {
	return filepath.Join(c.SourcePath(), c.ManifestName)
}

// TargetManifest is the manifest path in the target directory
func (c *Config) TargetManifest() string {
	return filepath.Join(c.TargetPath(), c.ManifestName)
}

// StagePath is the path handed to the stager, relative to the root when possible
func (c *Config) StagePath() string {
	if filepath.IsAbs(c.Stage.Path) {
		return c.Stage.Path
	}
	return filepath.Clean(c.Stage.Path)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root, p)
}
