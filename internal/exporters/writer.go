package exporters

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileWriter materializes generated files below a root directory.
type FileWriter struct {
	fs   afero.Fs
	root string
}

func NewFileWriter(fs afero.Fs, root string) *FileWriter {
	return &FileWriter{fs: fs, root: root}
}

// Path returns the location of relativePath inside the root directory.
func (w *FileWriter) Path(relativePath string) string {
	return filepath.Join(w.root, filepath.FromSlash(relativePath))
}

// Exists reports whether a file already occupies relativePath.
func (w *FileWriter) Exists(relativePath string) (bool, error) {
	exists, err := afero.Exists(w.fs, w.Path(relativePath))
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", relativePath, err)
	}
	return exists, nil
}

// Write stores content at relativePath, creating parent directories. Files
// whose content is already identical are left untouched; the returned bool
// tells whether a write happened.
func (w *FileWriter) Write(relativePath string, content []byte) (bool, error) {
	path := w.Path(relativePath)

	if existing, err := afero.ReadFile(w.fs, path); err == nil && bytes.Equal(existing, content) {
		return false, nil
	}

	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", relativePath, err)
	}

	if err := afero.WriteFile(w.fs, path, content, os.FileMode(0644)); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", relativePath, err)
	}

	return true, nil
}
