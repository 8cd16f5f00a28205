package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"kampuskart/internal/delivery/api/response"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SellerApplicationHandlerParams holds dependencies for SellerApplicationHandler, injected by Fx.
type SellerApplicationHandlerParams struct {
	fx.In

	SellerApplicationUC usecase.SellerApplicationUsecase
	Logger              *slog.Logger
}

// SellerApplicationHandler lets buyers apply to sell.
type SellerApplicationHandler struct {
	sellerApplicationUC usecase.SellerApplicationUsecase
	logger              *slog.Logger
}

// NewSellerApplicationHandler is the constructor for SellerApplicationHandler.
func NewSellerApplicationHandler(params SellerApplicationHandlerParams) *SellerApplicationHandler {
	return &SellerApplicationHandler{
		sellerApplicationUC: params.SellerApplicationUC,
		logger:              params.Logger,
	}
}

// Apply submits or resubmits a seller application (multipart studentIdNumber + studentIdPicture).
func (h *SellerApplicationHandler) Apply(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	studentID := strings.TrimSpace(c.FormValue("studentIdNumber"))
	if studentID == "" {
		return response.HandleAppError(c, domainerrors.NewValidationError("Student ID number is required"))
	}

	picture, closePicture, err := formFile(c, "studentIdPicture")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closePicture()

	if picture == nil {
		return response.HandleAppError(c, domainerrors.NewValidationError("Student ID picture is required"))
	}

	user, err := h.sellerApplicationUC.Apply(c.Request().Context(), session.UserID, &usecase.ApplyInput{
		StudentIDNumber:  studentID,
		StudentIDPicture: picture,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toApplicationResponse(user))
}

// GetMine returns the caller's application state.
func (h *SellerApplicationHandler) GetMine(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.sellerApplicationUC.GetMyApplication(c.Request().Context(), session.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toApplicationResponse(user))
}
