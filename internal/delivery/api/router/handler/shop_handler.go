package handler

import (
	"log/slog"
	"net/http"

	"kampuskart/internal/delivery/api/response"
	"kampuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler serves the seller's shop and the public shop directory.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShop opens the caller's shop (multipart name, description, optional logo).
func (h *ShopHandler) CreateShop(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logo, closeLogo, err := formFile(c, "logo")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeLogo()

	shop, err := h.shopUC.CreateShop(c.Request().Context(), session.UserID, &usecase.CreateShopInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Logo:        logo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toShopResponse(shop))
}

// GetMyShop returns the caller's shop.
func (h *ShopHandler) GetMyShop(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.GetMyShop(c.Request().Context(), session.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// UpdateMyShop changes the fields present in the form. A new logo replaces the old one.
func (h *ShopHandler) UpdateMyShop(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logo, closeLogo, err := formFile(c, "logo")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeLogo()

	shop, err := h.shopUC.UpdateMyShop(c.Request().Context(), session.UserID, &usecase.UpdateShopInput{
		Name:        optionalString(c, "name"),
		Description: optionalString(c, "description"),
		Logo:        logo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// DeleteMyShop removes the caller's shop and its products.
func (h *ShopHandler) DeleteMyShop(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.shopUC.DeleteMyShop(c.Request().Context(), session.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Shop deleted successfully")
}

// ListShops returns every shop.
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUC.ListShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponses(shops))
}

// GetShop returns one shop.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// ShopQRCode renders a PNG share code for the shop page.
func (h *ShopHandler) ShopQRCode(c echo.Context) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.shopUC.ShopQRCode(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
