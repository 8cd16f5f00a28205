package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"kampuskart/internal/delivery/api/response"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const productImagesField = "images"

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves seller product management and the marketplace.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProduct lists a product in the caller's shop.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	price, err := parsePrice(c.FormValue("price"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stock, err := parseIntField(c.FormValue("stock"), "stock", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	featured, err := parseIntField(c.FormValue("featuredImageIndex"), "featuredImageIndex", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	images, closeImages, err := formFiles(c, productImagesField)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeImages()

	product, err := h.productUC.CreateProduct(c.Request().Context(), session.UserID, &usecase.CreateProductInput{
		Name:               c.FormValue("name"),
		Description:        c.FormValue("description"),
		Price:              price,
		Stock:              stock,
		FeaturedImageIndex: featured,
		Images:             images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product, nil))
}

// ListMyProducts returns the caller's products, newest first.
func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListMyProducts(c.Request().Context(), session.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// UpdateProduct changes the fields present in the form. Uploaded images replace all existing ones.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateProductInput{
		Name:        optionalString(c, "name"),
		Description: optionalString(c, "description"),
	}

	if raw := optionalString(c, "price"); raw != nil {
		price, err := parsePrice(*raw)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.Price = &price
	}

	if raw := optionalString(c, "stock"); raw != nil {
		stock, err := parseIntField(*raw, "stock", 0)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.Stock = &stock
	}

	if raw := optionalString(c, "featuredImageIndex"); raw != nil {
		featured, err := parseIntField(*raw, "featuredImageIndex", 0)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.FeaturedImageIndex = &featured
	}

	images, closeImages, err := formFiles(c, productImagesField)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeImages()
	input.Images = images

	product, err := h.productUC.UpdateProduct(c.Request().Context(), session.UserID, productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product, nil))
}

// DeleteProduct removes one of the caller's products.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), session.UserID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}

// ListMarketplace returns a page of products from every shop, newest first.
func (h *ProductHandler) ListMarketplace(c echo.Context) error {
	page, err := h.productUC.ListMarketplace(c.Request().Context(), parsePage(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductListResponse(page))
}

// GetProduct returns one product with its shop.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listing, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(listing.Product, listing.Shop))
}

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, domainerrors.NewValidationError("Price is required")
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerrors.NewValidationError("Price must be a number")
	}

	return price, nil
}

func parseIntField(raw, field string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.NewValidationError(field + " must be an integer")
	}

	return value, nil
}
