package handler

import (
	"log/slog"
	"net/http"

	"kampuskart/internal/delivery/api/response"
	"kampuskart/internal/domain/entity"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the buyer's cart. Every endpoint answers with the
// recomputed cart view for the selection given in the "selected" query parameter.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest adds units of a product. Quantity defaults to 1.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  *int      `json:"quantity"`
}

// UpdateItemRequest sets an item's quantity. Values below 1 remove the item.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// RemoveItemsRequest removes several items at once. Ids are kept as strings so
// a malformed id is ignored like any other id missing from the cart.
type RemoveItemsRequest struct {
	ItemIDs []string `json:"itemIds" validate:"required,min=1"`
}

// GetCart returns the caller's cart, creating an empty one on first use.
func (h *CartHandler) GetCart(c echo.Context) error {
	return h.respond(c, func(session *entity.Session) (*entity.CartView, error) {
		return h.cartUC.GetCart(c.Request().Context(), session.UserID, parseSelection(c))
	})
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return h.respond(c, func(session *entity.Session) (*entity.CartView, error) {
		return h.cartUC.AddItem(c.Request().Context(), session.UserID, &usecase.AddCartItemInput{
			ProductID: req.ProductID,
			Quantity:  quantity,
		}, parseSelection(c))
	})
}

// UpdateItem sets the quantity of a cart item.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(session *entity.Session) (*entity.CartView, error) {
		return h.cartUC.UpdateItem(c.Request().Context(), session.UserID, itemID, *req.Quantity, parseSelection(c))
	})
}

// RemoveItem removes one item. Unknown items are a 404.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(session *entity.Session) (*entity.CartView, error) {
		return h.cartUC.RemoveItem(c.Request().Context(), session.UserID, itemID, parseSelection(c))
	})
}

// RemoveItems removes several items. Unknown ids are ignored.
func (h *CartHandler) RemoveItems(c echo.Context) error {
	var req RemoveItemsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, func(session *entity.Session) (*entity.CartView, error) {
		itemIDs := appendIDs(make([]uuid.UUID, 0, len(req.ItemIDs)), req.ItemIDs)

		return h.cartUC.RemoveItems(c.Request().Context(), session.UserID, itemIDs, parseSelection(c))
	})
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	return h.respond(c, func(session *entity.Session) (*entity.CartView, error) {
		return h.cartUC.Clear(c.Request().Context(), session.UserID)
	})
}

func (h *CartHandler) respond(c echo.Context, fn func(session *entity.Session) (*entity.CartView, error)) error {
	session, err := requireSession(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := fn(session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(view))
}
