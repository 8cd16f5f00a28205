package storage

import (
	"context"
	"io"

	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/service"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type gridFSMetadata struct {
	OriginalName string `bson:"originalName"`
	ContentType  string `bson:"contentType"`
}

type gridFSStorage struct {
	bucket *gridfs.Bucket
}

// NewGridFSStorage stores images in the named GridFS bucket. The ref doubles
// as file id and filename.
func NewGridFSStorage(db *mongo.Database, bucketName string) (service.ObjectStorage, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open GridFS bucket %s", bucketName)
	}

	return &gridFSStorage{bucket: bucket}, nil
}

func (s *gridFSStorage) Put(ctx context.Context, r io.Reader, info service.ObjectInfo) (string, error) {
	ref := newRef(info)

	stream, err := s.bucket.OpenUploadStreamWithID(ref, ref, options.GridFSUpload().SetMetadata(gridFSMetadata{
		OriginalName: info.OriginalName,
		ContentType:  info.ContentType,
	}))
	if err != nil {
		return "", errors.Wrap(err, "failed to open GridFS upload stream")
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	if _, err := io.Copy(stream, r); err != nil {
		_ = stream.Abort()

		return "", errors.Wrap(err, "failed to write GridFS file")
	}

	if err := stream.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish GridFS upload")
	}

	return ref, nil
}

func (s *gridFSStorage) Get(ctx context.Context, ref string) (io.ReadCloser, *service.ObjectInfo, error) {
	if !validRef(ref) {
		return nil, nil, domainerrors.ErrImageNotFound
	}

	stream, err := s.bucket.OpenDownloadStream(ref)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, domainerrors.ErrImageNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to open GridFS file")
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	file := stream.GetFile()

	var meta gridFSMetadata
	if len(file.Metadata) > 0 {
		if err := bson.Unmarshal(file.Metadata, &meta); err != nil {
			_ = stream.Close()

			return nil, nil, errors.Wrap(err, "failed to decode GridFS metadata")
		}
	}

	return stream, &service.ObjectInfo{
		Ref:          ref,
		OriginalName: meta.OriginalName,
		ContentType:  meta.ContentType,
		Size:         file.Length,
	}, nil
}

// Delete treats a missing file as already deleted.
func (s *gridFSStorage) Delete(ctx context.Context, ref string) error {
	if !validRef(ref) {
		return nil
	}

	if err := s.bucket.DeleteContext(ctx, ref); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
		return errors.Wrap(err, "failed to delete GridFS file")
	}

	return nil
}
