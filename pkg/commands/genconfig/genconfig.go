package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/ccsync/pkg/commands/internal"
	"github.com/arthur-debert/ccsync/pkg/config"
	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/arthur-debert/ccsync/pkg/filesystem"
	"github.com/arthur-debert/ccsync/pkg/logging"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	internal.Options

	// Format is "toml" (default) or "yaml"
	Format string
	// Write saves the config to the project root
	Write bool
}

// GenConfigResult is the rendered config and where it went
type GenConfigResult struct {
	Content string `json:"content"`
	Path    string `json:"path,omitempty"`
	Written bool   `json:"written"`
}

// GenConfig renders the effective configuration as a project config file.
// With Write set the file goes to the project root; an existing file is
// left alone.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	cfg, err := internal.LoadConfig(opts.Options)
	if err != nil {
		return nil, err
	}

	data, err := config.Render(cfg, opts.Format)
	if err != nil {
		return nil, err
	}
	result := &GenConfigResult{Content: string(data)}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := internal.FileSystem(opts.FS)
	result.Path = filepath.Join(cfg.Root, config.FileNameFor(opts.Format))

	if filesystem.IsFile(fs, result.Path) {
		logger.Warn().Str("path", result.Path).Msg("Config file already exists, skipping")
		return result, nil
	}
	if err := filesystem.WriteFile(fs, result.Path, data); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", result.Path).
			WithDetail("path", result.Path)
	}

	logger.Info().Str("path", result.Path).Msg("Written config file")
	result.Written = true
	return result, nil
}
