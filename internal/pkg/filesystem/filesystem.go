package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// Fs - filesystem abstraction.
// Commands run against the local disk, tests against an in-memory filesystem.
type Fs interface {
	// Name returns a name for logs and errors, eg. "local", "memory".
	Name() string
	Exists(path string) bool
	IsDir(path string) bool
	Mkdir(path string) error
	ReadDir(path string) ([]fs.FileInfo, error)
	ReadFile(path string) (string, error)
	WriteFile(path string, content string) error
}

// Join joins path parts, it is a central place for possible changes.
func Join(parts ...string) string {
	return filepath.Join(parts...)
}

type aferoFs struct {
	name  string
	fs    afero.Fs
	utils *afero.Afero
}

// NewLocalFs returns Fs backed by the OS filesystem.
func NewLocalFs() Fs {
	fs := afero.NewOsFs()
	return &aferoFs{name: "local", fs: fs, utils: &afero.Afero{Fs: fs}}
}

// NewMemoryFs returns Fs backed by memory, for use in tests.
func NewMemoryFs() Fs {
	fs := afero.NewMemMapFs()
	return &aferoFs{name: "memory", fs: fs, utils: &afero.Afero{Fs: fs}}
}

func (f *aferoFs) Name() string {
	return f.name
}

func (f *aferoFs) Exists(path string) bool {
	if _, err := f.fs.Stat(path); err == nil {
		return true
	}
	return false
}

func (f *aferoFs) IsDir(path string) bool {
	if info, err := f.fs.Stat(path); err == nil {
		return info.IsDir()
	}
	return false
}

func (f *aferoFs) Mkdir(path string) error {
	if err := f.fs.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("cannot create directory \"%s\": %w", path, err)
	}
	return nil
}

// ReadDir returns directory entries sorted by name.
func (f *aferoFs) ReadDir(path string) ([]fs.FileInfo, error) {
	items, err := f.utils.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory \"%s\": %w", path, err)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name() < items[j].Name()
	})
	return items, nil
}

func (f *aferoFs) ReadFile(path string) (string, error) {
	content, err := f.utils.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read file \"%s\": %w", path, err)
	}
	return string(content), nil
}

func (f *aferoFs) WriteFile(path string, content string) error {
	if err := f.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory \"%s\": %w", filepath.Dir(path), err)
	}
	if err := f.utils.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("cannot write file \"%s\": %w", path, err)
	}
	return nil
}
