package handler

import (
	"log/slog"
	"net/http"

	"kampuskart/internal/delivery/api/response"
	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves account management and application review.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ReviewApplicationRequest approves or rejects a pending application.
type ReviewApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// ListUsers returns a page of accounts, newest first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := h.adminUC.ListUsers(c.Request().Context(), parsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserListResponse(page))
}

// DeleteUser removes an account with its shop and cart.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteUser(c.Request().Context(), session.UserID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "User deleted successfully")
}

// ListApplications lists seller applications, optionally filtered by status.
func (h *AdminHandler) ListApplications(c echo.Context) error {
	var status entity.SellerStatus
	if raw := c.QueryParam("status"); raw != "" && raw != "all" {
		parsed, ok := entity.ParseSellerStatus(raw)
		if !ok || parsed == entity.SellerStatusNone {
			return response.HandleAppError(c, domainerrors.NewValidationError("Invalid status filter"))
		}
		status = parsed
	}

	page, err := h.adminUC.ListApplications(c.Request().Context(), status, parsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserListResponse(page))
}

// ReviewApplication sets an application to approved or rejected.
func (h *AdminHandler) ReviewApplication(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ReviewApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.adminUC.ReviewApplication(c.Request().Context(), userID, entity.SellerStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
