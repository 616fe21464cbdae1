package fileio

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Storage reads and writes whole files.
type Storage interface {
	// Load returns the contents of path.
	Load(path string) ([]byte, error)
	// Save replaces the contents of path with the concatenation of parts.
	Save(path string, parts ...[]byte) error
}

// FileMode is the permission used for newly created files.
const FileMode = 0o644

// OS is a Storage backed by the local filesystem.
type OS struct{}

// Load reads path.
func (OS) Load(path string) ([]byte, error) {
	if path == "" {
		return nil, wrap("load", path, ErrNoPath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap("load", path, err)
	}
	return data, nil
}

// Save writes parts to a temporary file next to path and renames it into
// place, so a failed write leaves the old contents intact.
func (OS) Save(path string, parts ...[]byte) (err error) {
	if path == "" {
		return wrap("save", path, ErrNoPath)
	}

	mode := os.FileMode(FileMode)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return wrap("save", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	for _, p := range parts {
		if _, err = tmp.Write(p); err != nil {
			return wrap("save", path, err)
		}
	}
	if err = tmp.Chmod(mode); err != nil {
		return wrap("save", path, err)
	}
	if err = tmp.Close(); err != nil {
		return wrap("save", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return wrap("save", path, err)
	}
	return nil
}

// Memory is an in-memory Storage. The zero value is ready to use.
type Memory struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemory returns a Memory seeded with files.
func NewMemory(files map[string]string) *Memory {
	m := &Memory{files: make(map[string][]byte, len(files))}
	for k, v := range files {
		m.files[k] = []byte(v)
	}
	return m
}

// Load returns a copy of the stored contents.
func (m *Memory) Load(path string) ([]byte, error) {
	if path == "" {
		return nil, wrap("load", path, ErrNoPath)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, wrap("load", path, ErrNotExist)
	}
	return bytes.Clone(data), nil
}

// Save stores the concatenation of parts.
func (m *Memory) Save(path string, parts ...[]byte) error {
	if path == "" {
		return wrap("save", path, ErrNoPath)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[path] = bytes.Join(parts, nil)
	return nil
}

// File returns the stored contents of path as a string.
func (m *Memory) File(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	return string(data), ok
}

// Paths returns the stored paths in sorted order.
func (m *Memory) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for k := range m.files {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
