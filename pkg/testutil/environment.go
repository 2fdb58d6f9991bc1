// pkg/testutil/environment.go
// DEPENDENCIES: config, filesystem
// PURPOSE: Orchestrate test environments with a project root and its config

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ccsync/pkg/config"
	"github.com/arthur-debert/ccsync/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a project root, a filesystem and a default config
type TestEnvironment struct {
	Root   string
	FS     afero.Fs
	Config *config.Config
	Type   EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:    t,
		Type: envType,
	}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual/project"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Root = filepath.Join(t.TempDir(), "project")
		env.FS = filesystem.NewOS()
	}

	if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
		t.Fatalf("Failed to create project root: %v", err)
	}

	cfg, err := config.Default(env.Root)
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	env.Config = cfg

	return env
}

// Path joins elem onto the project root
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.Root}, elem...)...)
}

// TargetPath joins elem onto the configured target directory
func (env *TestEnvironment) TargetPath(elem ...string) string {
	return filepath.Join(append([]string{env.Config.TargetPath()}, elem...)...)
}

// Revalidate re-runs config validation after a test mutated Config
func (env *TestEnvironment) Revalidate() {
	env.t.Helper()
	if err := env.Config.Validate(); err != nil {
		env.t.Fatalf("Invalid test config: %v", err)
	}
}

// WithFileTree creates a complete file tree under the project root
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.Root, tree)
}

// FileTree represents a directory structure for testing.
// Values are either file contents (string) or nested FileTrees.
type FileTree map[string]interface{}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			CreateFileT(t, fs, fullPath, v)
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
