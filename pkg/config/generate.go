package config

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/ccsync/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported formats for Render
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Render serializes cfg as a project config file in the given format
func Render(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTOML, "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML config")
		}
		return buf.Bytes(), nil
	case FormatYAML, "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML config")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML config")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
}

// FileNameFor returns the project file name written for format
func FileNameFor(format string) string {
	if strings.ToLower(format) == FormatYAML || strings.ToLower(format) == "yml" {
		return ".ccsync.yaml"
	}
	return ".ccsync.toml"
}
