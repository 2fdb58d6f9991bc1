// Package copier copies source files as text into the packaging directory,
// removing the editor path comment some tools put on the first line.
package copier

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/ccsync/pkg/config"
	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/arthur-debert/ccsync/pkg/filesystem"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Copier copies files through an afero filesystem
type Copier struct {
	fs     afero.Fs
	strip  *regexp.Regexp
	dryRun bool
	logger zerolog.Logger
}

// New creates a copier. A nil strip pattern disables stripping.
func New(fsys afero.Fs, strip *regexp.Regexp, dryRun bool) *Copier {
	return &Copier{
		fs:     fsys,
		strip:  strip,
		dryRun: dryRun,
		logger: logging.GetLogger("copier"),
	}
}

// FromConfig creates a copier using the configured strip pattern and dry-run flag
func FromConfig(fsys afero.Fs, cfg *config.Config) *Copier {
	return New(fsys, cfg.StripRegexp(), cfg.DryRun)
}

// Copy writes the transformed content of src to dst, creating parent
// directories and overwriting dst. It reports whether dst changed. Nothing is
// written when dst already holds the same content or in dry-run mode.
func (c *Copier) Copy(src, dst string) (bool, error) {
	c.logger.Info().Str("source", src).Str("target", dst).Msg("Copying file")

	data, err := afero.ReadFile(c.fs, src)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", src).
			WithDetail("path", src)
	}

	content := c.Transform(data)

	changed := true
	if existing, err := afero.ReadFile(c.fs, dst); err == nil {
		changed = string(existing) != content
	}

	if !changed {
		c.logger.Debug().Str("target", dst).Msg("Target already up to date")
		return false, nil
	}

	if c.dryRun {
		c.logger.Info().Str("target", dst).Msg("Dry run mode - file would be written")
		return true, nil
	}

	if err := filesystem.EnsureDir(c.fs, filepath.Dir(dst)); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", dst).
			WithDetail("path", filepath.Dir(dst))
	}
	if err := filesystem.WriteFile(c.fs, dst, []byte(content)); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst).
			WithDetail("path", dst)
	}
	return true, nil
}

// Transform decodes data as text and applies the strip pattern
func (c *Copier) Transform(data []byte) string {
	return c.Strip(Normalize(data))
}

// Strip removes every match of the strip pattern. The default pattern is
// anchored with a non-multiline "^", so at most the first line is removed.
func (c *Copier) Strip(content string) string {
	if c.strip == nil {
		return content
	}
	return c.strip.ReplaceAllString(content, "")
}

// Normalize reads data the way a text-mode UTF-8 reader does: invalid byte
// sequences are dropped and CRLF or lone CR line endings become LF.
func Normalize(data []byte) string {
	s := strings.ToValidUTF8(string(data), "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
