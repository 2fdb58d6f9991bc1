package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// DirPerm and FilePerm are the permissions used for created entries
const (
	DirPerm  fs.FileMode = 0755
	FilePerm fs.FileMode = 0644
)

// NewOS returns the OS filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// EnsureDir creates path and any missing parents. Existing directories are not an error.
func EnsureDir(fsys afero.Fs, path string) error {
	return fsys.MkdirAll(path, DirPerm)
}

// IsDir reports whether path exists and is a directory
func IsDir(fsys afero.Fs, path string) bool {
	ok, err := afero.DirExists(fsys, path)
	return err == nil && ok
}

// IsFile reports whether path exists and is not a directory
func IsFile(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Glob returns the regular files matching pattern, sorted by name.
// Directories that happen to match are left out, and so are hidden files
// unless the pattern itself starts with a dot.
func Glob(fsys afero.Fs, pattern string) ([]string, error) {
	matches, err := afero.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}

	wantHidden := strings.HasPrefix(filepath.Base(pattern), ".")
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if !wantHidden && strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}
		if IsFile(fsys, m) {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// WriteFile writes data to name, keeping the mode of an existing file
func WriteFile(fsys afero.Fs, name string, data []byte) error {
	perm := FilePerm
	info, err := fsys.Stat(name)
	switch {
	case err == nil && !info.IsDir():
		perm = info.Mode().Perm()
	case err != nil && !os.IsNotExist(err):
		return err
	}
	return afero.WriteFile(fsys, name, data, perm)
}
