// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"kampuskart/config"
	deliverycontext "kampuskart/internal/delivery/context"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/service"
	"kampuskart/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sniffLen is how much of an upload is buffered for content detection.
const sniffLen = 3072

type imageService struct {
	storage  service.ObjectStorage
	maxBytes int64
	logger   *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	Storage service.ObjectStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewImageService creates the upload pipeline backed by object storage.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	var maxBytes int64
	if params.Config != nil && params.Config.Blob != nil {
		maxBytes = params.Config.Blob.MaxUploadBytes()
	}

	return &imageService{
		storage:  params.Storage,
		maxBytes: maxBytes,
		logger:   params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Store validates and writes a single image.
func (srv *imageService) Store(ctx context.Context, upload *usecase.UploadInput) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", domainerrors.NewValidationError("Image file is required")
	}

	if srv.maxBytes > 0 && upload.Size > srv.maxBytes {
		return "", domainerrors.ErrUploadTooLarge.WithDetails(map[string]any{
			"maxBytes": srv.maxBytes,
			"size":     upload.Size,
		})
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read upload")
	}
	head = head[:n]

	if n == 0 {
		return "", domainerrors.NewValidationError("Image file is empty")
	}

	mtype := mimetype.Detect(head)
	if !strings.HasPrefix(mtype.String(), "image/") {
		srv.log(ctx).Warn("Rejected upload with unsupported content type",
			slog.String("filename", upload.Filename),
			slog.String("detected", mtype.String()))

		return "", domainerrors.ErrUnsupportedMediaType.WithDetails(map[string]string{
			"contentType": mtype.String(),
		})
	}

	content := io.MultiReader(bytes.NewReader(head), upload.Content)
	if srv.maxBytes > 0 {
		// The declared size is not trusted.
		content = io.LimitReader(content, srv.maxBytes+1)
		content = &limitCheckReader{r: content, max: srv.maxBytes}
	}

	ref, err := srv.storage.Put(ctx, content, service.ObjectInfo{
		OriginalName: upload.Filename,
		ContentType:  mtype.String(),
		Size:         upload.Size,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUploadTooLarge) {
			return "", err
		}

		return "", errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Debug("Image stored",
		slog.String("ref", ref),
		slog.String("contentType", mtype.String()),
		slog.Int64("size", upload.Size))

	return ref, nil
}

// Open returns a stored image.
func (srv *imageService) Open(ctx context.Context, ref string) (io.ReadCloser, *service.ObjectInfo, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, nil, domainerrors.ErrImageNotFound
	}

	rc, info, err := srv.storage.Get(ctx, ref)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open image")
	}

	return rc, info, nil
}

// Discard removes images, logging instead of failing.
func (srv *imageService) Discard(ctx context.Context, refs ...string) {
	for _, ref := range refs {
		if ref == "" {
			continue
		}

		if err := srv.storage.Delete(ctx, ref); err != nil {
			srv.log(ctx).Warn("Failed to delete image", slog.String("ref", ref), slog.Any("error", err))
		}
	}
}

// limitCheckReader fails once more than max bytes have been read.
type limitCheckReader struct {
	r    io.Reader
	max  int64
	read int64
}

func (l *limitCheckReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.max {
		return n, domainerrors.ErrUploadTooLarge
	}

	return n, err
}
