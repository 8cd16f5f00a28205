package storage

import (
	"context"
	"io"

	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// URLs
	_ "gocloud.dev/blob/gcsblob"  // gs:// URLs
	_ "gocloud.dev/blob/memblob"  // mem:// URLs
	_ "gocloud.dev/blob/s3blob"   // s3:// URLs
	"gocloud.dev/gcerrors"
)

const metadataOriginalName = "originalname"

type bucketStorage struct {
	bucket *blob.Bucket
}

// OpenBucket opens a gocloud bucket URL such as file:///var/lib/kampuskart?create_dir=true.
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return bucket, nil
}

// NewBucketStorage stores images as objects in bucket.
func NewBucketStorage(bucket *blob.Bucket) service.ObjectStorage {
	return &bucketStorage{bucket: bucket}
}

func (s *bucketStorage) Put(ctx context.Context, r io.Reader, info service.ObjectInfo) (string, error) {
	ref := newRef(info)

	// Canceling the context before Close discards a partial write.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, ref, &blob.WriterOptions{
		ContentType: info.ContentType,
		Metadata:    map[string]string{metadataOriginalName: info.OriginalName},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open object writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write object")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit object")
	}

	return ref, nil
}

func (s *bucketStorage) Get(ctx context.Context, ref string) (io.ReadCloser, *service.ObjectInfo, error) {
	if !validRef(ref) {
		return nil, nil, domainerrors.ErrImageNotFound
	}

	attrs, err := s.bucket.Attributes(ctx, ref)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, domainerrors.ErrImageNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to read object attributes")
	}

	reader, err := s.bucket.NewReader(ctx, ref, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, domainerrors.ErrImageNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to open object")
	}

	return reader, &service.ObjectInfo{
		Ref:          ref,
		OriginalName: attrs.Metadata[metadataOriginalName],
		ContentType:  attrs.ContentType,
		Size:         attrs.Size,
	}, nil
}

// Delete treats a missing object as already deleted.
func (s *bucketStorage) Delete(ctx context.Context, ref string) error {
	if !validRef(ref) {
		return nil
	}

	if err := s.bucket.Delete(ctx, ref); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete object")
	}

	return nil
}
