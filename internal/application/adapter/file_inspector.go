// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// FileState describes what the file system reports for a path.
type FileState int

const (
	// FileStateMissing means nothing exists at the path.
	FileStateMissing FileState = iota
	// FileStateUnreadable means something exists at the path but it is not a readable regular file.
	FileStateUnreadable
	// FileStateReadable means a regular file exists and can be opened for reading.
	FileStateReadable
)

// FileInspector defines the interface for file system checks made during validation.
type FileInspector interface {
	// Inspect reports the state of the file at path.
	Inspect(path string) FileState

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) (string, error)
}
