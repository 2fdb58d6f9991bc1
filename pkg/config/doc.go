// Package config handles configuration management for ccsync.
//
// Configuration is layered with koanf: embedded defaults, then an optional
// project file (.ccsync.toml, ccsync.toml, .ccsync.yaml or ccsync.yaml in
// the project root, or an explicit --config path), then CCSYNC_ environment
// variables, then command-line overrides. The result is a single Config
// value that is built once and handed to every component.
package config
