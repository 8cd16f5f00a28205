// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"kampuskart/internal/domain/service"
)

// UploadInput is a file received from a client, not yet validated.
type UploadInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// ImageUsecase validates and stores uploaded images and serves them back.
type ImageUsecase interface {
	// Store checks the size limit and sniffs the content type, rejecting
	// anything that is not an image, then writes it to object storage.
	Store(ctx context.Context, upload *UploadInput) (string, error)

	// Open returns the stored image. Callers must close the reader.
	Open(ctx context.Context, ref string) (io.ReadCloser, *service.ObjectInfo, error)

	// Discard deletes images and only logs failures.
	Discard(ctx context.Context, refs ...string)
}
