// Package storage is the file-attachment collaborator: it accepts raw blob
// bytes and returns a retrievable reference key.
package storage

import "io"

// BlobStore stores and retrieves attachment blobs by key.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
}
