package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"kampuskart/internal/delivery/api/response"
	"kampuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

// ImageHandler streams stored images.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler.
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC: params.ImageUC,
		logger:  params.Logger,
	}
}

// GetImage streams the image stored under ref with its content type.
func (h *ImageHandler) GetImage(c echo.Context) error {
	reader, info, err := h.imageUC.Open(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	header := c.Response().Header()
	if info.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}
	// Refs are never reused, so the content behind one never changes.
	header.Set("Cache-Control", "public, max-age=31536000, immutable")

	contentType := info.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, reader)
}
