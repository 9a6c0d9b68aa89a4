// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/defend-your-code/form/internal/application/adapter"
)

// fileInspector implements the adapter.FileInspector interface on the local file system.
type fileInspector struct{}

// NewFileInspector creates a new local file system inspector.
func NewFileInspector() adapter.FileInspector {
	return &fileInspector{}
}

// Inspect stats the path and, for regular files, proves readability by opening it.
func (i *fileInspector) Inspect(path string) adapter.FileState {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return adapter.FileStateMissing
		}
		return adapter.FileStateUnreadable
	}

	if !info.Mode().IsRegular() {
		return adapter.FileStateUnreadable
	}

	f, err := os.Open(path)
	if err != nil {
		return adapter.FileStateUnreadable
	}
	_ = f.Close()

	return adapter.FileStateReadable
}

// ReadFile returns the contents of the file at path.
func (i *fileInspector) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
