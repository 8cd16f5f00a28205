package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/service"
	mockSvc "kampuskart/internal/mocks/service"
	"kampuskart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func createTestImageService(t *testing.T) (usecase.ImageUsecase, *mockSvc.MockObjectStorage) {
	storage := mockSvc.NewMockObjectStorage(t)

	srv := NewImageService(ImageServiceParams{
		Storage: storage,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	})

	return srv, storage
}

func TestImageService_Store_SniffsImage(t *testing.T) {
	srv, storage := createTestImageService(t)
	ctx := context.Background()

	var stored []byte
	storage.EXPECT().
		Put(ctx, mock.Anything, mock.MatchedBy(func(info service.ObjectInfo) bool {
			return info.ContentType == "image/png" && info.OriginalName == "logo.png"
		})).
		RunAndReturn(func(_ context.Context, r io.Reader, _ service.ObjectInfo) (string, error) {
			var err error
			stored, err = io.ReadAll(r)

			return "stored.png", err
		})

	ref, err := srv.Store(ctx, &usecase.UploadInput{
		Filename: "logo.png",
		Size:     int64(len(pngHeader)),
		Content:  bytes.NewReader(pngHeader),
	})

	require.NoError(t, err)
	assert.Equal(t, "stored.png", ref)
	assert.Equal(t, pngHeader, stored)
}

func TestImageService_Store_RejectsNonImage(t *testing.T) {
	srv, _ := createTestImageService(t)

	_, err := srv.Store(context.Background(), &usecase.UploadInput{
		Filename: "evil.png",
		Size:     11,
		Content:  strings.NewReader("hello world"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}

func TestImageService_Store_RejectsDeclaredOversize(t *testing.T) {
	srv, _ := createTestImageService(t)

	_, err := srv.Store(context.Background(), &usecase.UploadInput{
		Filename: "big.png",
		Size:     4096,
		Content:  bytes.NewReader(pngHeader),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUploadTooLarge))
}

func TestImageService_Store_RejectsUnderstatedSize(t *testing.T) {
	srv, storage := createTestImageService(t)
	ctx := context.Background()

	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 2048)...)

	storage.EXPECT().
		Put(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r io.Reader, _ service.ObjectInfo) (string, error) {
			_, err := io.ReadAll(r)

			return "", errors.Wrap(err, "copy failed")
		})

	_, err := srv.Store(ctx, &usecase.UploadInput{
		Filename: "liar.png",
		Size:     10,
		Content:  bytes.NewReader(body),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUploadTooLarge))
}

func TestImageService_Store_RequiresContent(t *testing.T) {
	srv, _ := createTestImageService(t)

	_, err := srv.Store(context.Background(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestImageService_Discard_LogsFailures(t *testing.T) {
	srv, storage := createTestImageService(t)
	ctx := context.Background()

	storage.EXPECT().Delete(ctx, "a.png").Return(errors.New("boom"))
	storage.EXPECT().Delete(ctx, "b.png").Return(nil)

	srv.Discard(ctx, "a.png", "", "b.png")
}

func TestImageService_Open_Missing(t *testing.T) {
	srv, storage := createTestImageService(t)
	ctx := context.Background()

	storage.EXPECT().Get(ctx, "nope.png").Return(nil, nil, domainerrors.ErrImageNotFound)

	_, _, err := srv.Open(ctx, "nope.png")

	assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
}
