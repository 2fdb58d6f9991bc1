package testutil

import (
	"testing"

	"github.com/spf13/afero"
)

// AssertFileContent checks that path exists with exactly the expected content
func AssertFileContent(t *testing.T, fs afero.Fs, path, expected string) {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Errorf("Expected file %s to exist: %v", path, err)
		return
	}
	if string(data) != expected {
		t.Errorf("File %s content mismatch\nExpected: %q\nActual:   %q", path, expected, string(data))
	}
}

// AssertFileExists checks that path exists
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	if ok, err := afero.Exists(fs, path); err != nil || !ok {
		t.Errorf("Expected %s to exist", path)
	}
}

// AssertNoFile checks that path does not exist
func AssertNoFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	if ok, _ := afero.Exists(fs, path); ok {
		t.Errorf("Expected %s not to exist", path)
	}
}

// AssertDirExists checks that path exists and is a directory
func AssertDirExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	if ok, err := afero.DirExists(fs, path); err != nil || !ok {
		t.Errorf("Expected directory %s to exist", path)
	}
}
