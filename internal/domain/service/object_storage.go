package service

import (
	"context"
	"io"
)

// ObjectInfo describes a stored blob.
type ObjectInfo struct {
	Ref          string
	OriginalName string
	ContentType  string
	Size         int64
}

// ObjectStorage is the blob bucket holding shop logos, product images and
// student ID photos. Refs are opaque to callers.
type ObjectStorage interface {
	// Put stores the content read from r and returns its reference.
	Put(ctx context.Context, r io.Reader, info ObjectInfo) (string, error)

	// Get opens a stored object. Callers must close the reader.
	// Missing objects yield domainerrors.ErrImageNotFound.
	Get(ctx context.Context, ref string) (io.ReadCloser, *ObjectInfo, error)

	// Delete removes a stored object.
	Delete(ctx context.Context, ref string) error
}
