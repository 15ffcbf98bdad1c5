package storage

import "io"

// FileStorage stores and serves identity-verification images. Paths
// returned by Save are opaque keys relative to the storage root; callers
// persist them on the user record.
type FileStorage interface {
	// Save writes the file and returns the storage path. The original
	// filename is only consulted for its extension.
	Save(originalFilename string, contentType string, size int64, reader io.Reader) (string, error)

	// Open opens a stored file for reading. The path is validated against
	// the storage root so callers can pass user-supplied values.
	Open(path string) (io.ReadCloser, error)

	// Exists reports whether the path refers to a stored file.
	Exists(path string) bool

	// Delete removes a stored file.
	Delete(path string) error

	// List returns the storage paths of all stored files.
	List() ([]string, error)
}
