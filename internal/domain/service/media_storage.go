package service

import "context"

// MediaStorage abstracts the file-upload store. Gallery rows reference files
// by path only; the lifecycle service uses this interface to remove files
// whose gallery entries were superseded or cascaded away.
type MediaStorage interface {
	// Delete removes the stored file at the given path. Deleting a path
	// that no longer exists is not an error.
	Delete(ctx context.Context, path string) error

	// Close releases any resources held by the storage backend.
	Close() error
}
