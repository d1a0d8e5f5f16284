package storage

import "io"

// Storage abstracts where uploaded donation images live. The local
// filesystem implementation is the only backend today; a cloud bucket would
// slot in behind the same interface.
type Storage interface {
	// Save stores the file content and returns the public path it will be
	// served from.
	Save(filename string, reader io.Reader) (string, error)

	// Open opens a stored file for reading by its base name.
	Open(name string) (io.ReadCloser, error)

	// Delete removes a stored file by its base name.
	Delete(name string) error
}
