package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) service.ObjectStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketStorage(bucket)
}

func TestBucketStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage(t)
	content := []byte("\x89PNG\r\n\x1a\nfake image body")

	ref, err := storage.Put(ctx, bytes.NewReader(content), service.ObjectInfo{
		OriginalName: "Logo.PNG",
		ContentType:  "image/png",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".png"))
	assert.True(t, validRef(ref))

	reader, info, err := storage.Get(ctx, ref)
	require.NoError(t, err)
	defer reader.Close()

	stored, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, stored)
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, "Logo.PNG", info.OriginalName)
	assert.Equal(t, int64(len(content)), info.Size)

	require.NoError(t, storage.Delete(ctx, ref))
	_, _, err = storage.Get(ctx, ref)
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)

	// Deleting twice is fine.
	assert.NoError(t, storage.Delete(ctx, ref))
}

func TestBucketStorage_FailedWriteLeavesNothing(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	storage := NewBucketStorage(bucket)

	_, err := storage.Put(ctx, io.MultiReader(strings.NewReader("partial"), failingReader{}), service.ObjectInfo{
		ContentType: "image/jpeg",
	})
	require.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)

	iter := bucket.List(nil)
	_, err = iter.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestBucketStorage_RejectsForeignRefs(t *testing.T) {
	storage := newMemStorage(t)

	for _, ref := range []string{"../config.yaml", "logo.png", "", "2f1c0e9e-0000-4000-8000-000000000000/../x"} {
		_, _, err := storage.Get(context.Background(), ref)
		assert.ErrorIs(t, err, domainerrors.ErrImageNotFound, ref)
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		info service.ObjectInfo
		want string
	}{
		{name: "from filename", info: service.ObjectInfo{OriginalName: "photo.JPG", ContentType: "image/jpeg"}, want: ".jpg"},
		{name: "from content type", info: service.ObjectInfo{OriginalName: "photo", ContentType: "image/webp"}, want: ".webp"},
		{name: "odd filename extension", info: service.ObjectInfo{OriginalName: "photo.j p g", ContentType: "image/png"}, want: ".png"},
		{name: "unknown", info: service.ObjectInfo{ContentType: "application/x-unknown"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extension(tt.info))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, domainerrors.ErrUploadTooLarge
}
