// Package internal holds the setup shared by the command implementations.
package internal

import (
	"github.com/arthur-debert/ccsync/pkg/config"
	"github.com/arthur-debert/ccsync/pkg/filesystem"
	"github.com/arthur-debert/ccsync/pkg/logging"
	"github.com/arthur-debert/ccsync/pkg/stage"
	"github.com/spf13/afero"
)

// Options are the inputs every command shares
type Options struct {
	// Root is the project root; empty means the working directory
	Root string
	// ConfigFile replaces the project config file lookup when set
	ConfigFile string
	// Overrides are koanf keys set from command-line flags
	Overrides map[string]interface{}
	// FS defaults to the OS filesystem
	FS afero.Fs
}

// LoadConfig loads the layered configuration for opts
func LoadConfig(opts Options) (*config.Config, error) {
	logger := logging.GetLogger("commands.setup")

	cfg, err := config.Load(config.LoadOptions{
		Root:       opts.Root,
		ConfigFile: opts.ConfigFile,
		Overrides:  opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", cfg.Root).
		Str("target", cfg.TargetDir).
		Bool("dryRun", cfg.DryRun).
		Msg("Configuration loaded")
	return cfg, nil
}

// FileSystem returns fs, or the OS filesystem when fs is nil
func FileSystem(fs afero.Fs) afero.Fs {
	if fs == nil {
		return filesystem.NewOS()
	}
	return fs
}

// Stager returns override when set, otherwise the configured backend
func Stager(cfg *config.Config, override stage.Stager) (stage.Stager, error) {
	if override != nil {
		return override, nil
	}
	return stage.FromConfig(cfg)
}
