package handler

import (
	"log/slog"
	"net/http"

	"kampuskart/internal/delivery/api/response"
	"kampuskart/internal/domain/entity"
	"kampuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and the caller's profile.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is accepted as JSON or multipart. Seller registrations must
// be multipart so the student ID picture can be attached.
type RegisterRequest struct {
	FirstName       string `json:"firstName" form:"firstName" validate:"required,max=50"`
	LastName        string `json:"lastName" form:"lastName" validate:"required,max=50"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	Role            string `json:"role" form:"role" validate:"omitempty,oneof=buyer seller"`
	StudentIDNumber string `json:"studentIdNumber" form:"studentIdNumber" validate:"required_if=Role seller"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// CheckEmailRequest asks whether an email is taken.
type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest holds the editable profile fields.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
}

// ChangePasswordRequest changes the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// Register creates a buyer account, or a buyer with a pending seller application.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	picture, closePicture, err := formFile(c, "studentIdPicture")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closePicture()

	role := entity.Role(req.Role)
	if role == "" {
		role = entity.RoleBuyer
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Password:         req.Password,
		Role:             role,
		StudentIDNumber:  req.StudentIDNumber,
		StudentIDPicture: picture,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(out))
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out))
}

// Refresh issues a new token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out))
}

// CheckEmail reports whether an account already uses the email.
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	var req CheckEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	exists, err := h.authUC.CheckEmail(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists})
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.GetProfile(c.Request().Context(), session.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile changes the caller's name.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), session.UserID, &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ChangePassword verifies the current password and stores the new one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err = h.authUC.ChangePassword(c.Request().Context(), session.UserID, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password updated successfully")
}
