package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kampuskart/config"
	"kampuskart/internal/delivery/api/middleware"
	"kampuskart/internal/delivery/api/router/handler"
	"kampuskart/internal/delivery/api/validator"
	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/service"
	mocks "kampuskart/internal/mocks/usecase"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	buyerToken   = "buyer-token"
	sellerToken  = "seller-token"
	pendingToken = "pending-token"
	adminToken   = "admin-token"
)

type testAPI struct {
	echo *echo.Echo

	authUC    *mocks.MockAuthUsecase
	appUC     *mocks.MockSellerApplicationUsecase
	adminUC   *mocks.MockAdminUsecase
	shopUC    *mocks.MockShopUsecase
	productUC *mocks.MockProductUsecase
	cartUC    *mocks.MockCartUsecase
	imageUC   *mocks.MockImageUsecase

	buyer   *entity.Session
	seller  *entity.Session
	pending *entity.Session
	admin   *entity.Session
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := &testAPI{
		authUC:    mocks.NewMockAuthUsecase(t),
		appUC:     mocks.NewMockSellerApplicationUsecase(t),
		adminUC:   mocks.NewMockAdminUsecase(t),
		shopUC:    mocks.NewMockShopUsecase(t),
		productUC: mocks.NewMockProductUsecase(t),
		cartUC:    mocks.NewMockCartUsecase(t),
		imageUC:   mocks.NewMockImageUsecase(t),

		buyer:   &entity.Session{UserID: uuid.New(), Role: entity.RoleBuyer},
		seller:  &entity.Session{UserID: uuid.New(), Role: entity.RoleSeller, SellerStatus: entity.SellerStatusApproved},
		pending: &entity.Session{UserID: uuid.New(), Role: entity.RoleBuyer, SellerStatus: entity.SellerStatusPending},
		admin:   &entity.Session{UserID: uuid.New(), Role: entity.RoleAdmin},
	}

	sessions := map[string]*entity.Session{
		buyerToken:   api.buyer,
		sellerToken:  api.seller,
		pendingToken: api.pending,
		adminToken:   api.admin,
	}
	api.authUC.EXPECT().ResolveSession(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, token string) (*entity.Session, error) {
			if session, ok := sessions[token]; ok {
				return session, nil
			}

			return nil, domainerrors.ErrInvalidToken
		}).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:              handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: api.authUC, Logger: logger}),
		SellerApplicationHandler: handler.NewSellerApplicationHandler(handler.SellerApplicationHandlerParams{SellerApplicationUC: api.appUC, Logger: logger}),
		AdminHandler:             handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: api.adminUC, Logger: logger}),
		ShopHandler:              handler.NewShopHandler(handler.ShopHandlerParams{ShopUC: api.shopUC, Logger: logger}),
		ProductHandler:           handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: api.productUC, Logger: logger}),
		CartHandler:              handler.NewCartHandler(handler.CartHandlerParams{CartUC: api.cartUC, Logger: logger}),
		ImageHandler:             handler.NewImageHandler(handler.ImageHandlerParams{ImageUC: api.imageUC, Logger: logger}),
		AuthMiddleware:           middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: api.authUC, Logger: logger}),
		Config:                   &config.Config{},
	}).RegisterRoutes(e)

	api.echo = e

	return api
}

func (api *testAPI) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code     string         `json:"code"`
		Message  string         `json:"message"`
		Details  map[string]any `json:"details"`
		Redirect string         `json:"redirect"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func emptyView(buyerID uuid.UUID) *entity.CartView {
	return &entity.CartView{
		CartID:        uuid.New(),
		BuyerID:       buyerID,
		Items:         []entity.CartLine{},
		Shops:         []entity.ShopGroup{},
		CartTotal:     decimal.Zero,
		SelectedTotal: decimal.Zero,
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestAccessGate(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		token        string
		wantStatus   int
		wantRedirect string
	}{
		{"no token on cart", http.MethodGet, "/api/cart", "", http.StatusUnauthorized, "login"},
		{"unknown token", http.MethodGet, "/api/cart", "forged", http.StatusUnauthorized, "login"},
		{"admin is confined to the admin area", http.MethodGet, "/api/cart", adminToken, http.StatusForbidden, "admin"},
		{"buyer cannot open admin area", http.MethodGet, "/api/admin/users", buyerToken, http.StatusForbidden, "buyer"},
		{"pending applicant is not a seller", http.MethodGet, "/api/shops/my-shop", pendingToken, http.StatusForbidden, "buyer"},
		{"buyer cannot list products for sale", http.MethodPost, "/api/products", buyerToken, http.StatusForbidden, "buyer"},
		{"seller cannot open admin area", http.MethodGet, "/api/admin/seller-applications", sellerToken, http.StatusForbidden, "buyer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(tt.method, tt.target, tt.token, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantRedirect, env.Error.Redirect)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", env.Error.Code)
				assert.Contains(t, env.Error.Message, "Access denied")
			}
		})
	}
}

func TestCartRoutes(t *testing.T) {
	t.Run("selection is read from the query", func(t *testing.T) {
		api := newTestAPI(t)
		first, second := uuid.New(), uuid.New()

		api.cartUC.EXPECT().
			GetCart(mock.Anything, api.buyer.UserID, usecase.CartSelection{first, second}).
			Return(emptyView(api.buyer.UserID), nil)

		rec := api.do(http.MethodGet, "/api/cart?selected="+first.String()+","+second.String(), buyerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("approved sellers may shop", func(t *testing.T) {
		api := newTestAPI(t)

		api.cartUC.EXPECT().
			GetCart(mock.Anything, api.seller.UserID, usecase.CartSelection(nil)).
			Return(emptyView(api.seller.UserID), nil)

		rec := api.do(http.MethodGet, "/api/cart", sellerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("add defaults quantity to one", func(t *testing.T) {
		api := newTestAPI(t)
		productID := uuid.New()

		view := emptyView(api.buyer.UserID)
		view.TotalItems = 1
		view.CartTotal = decimal.RequireFromString("12.50")

		api.cartUC.EXPECT().
			AddItem(mock.Anything, api.buyer.UserID, &usecase.AddCartItemInput{ProductID: productID, Quantity: 1}, usecase.CartSelection(nil)).
			Return(view, nil)

		rec := api.do(http.MethodPost, "/api/cart/add", buyerToken, `{"productId":"`+productID.String()+`"}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body handler.CartResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, 1, body.TotalItems)
		assert.True(t, decimal.RequireFromString("12.5").Equal(body.CartTotal))
	})

	t.Run("out of stock carries the stock figures", func(t *testing.T) {
		api := newTestAPI(t)
		productID := uuid.New()

		api.cartUC.EXPECT().
			AddItem(mock.Anything, api.buyer.UserID, &usecase.AddCartItemInput{ProductID: productID, Quantity: 4}, usecase.CartSelection(nil)).
			Return(nil, domainerrors.NewOutOfStockError(5, 2))

		rec := api.do(http.MethodPost, "/api/cart/add", buyerToken, `{"productId":"`+productID.String()+`","quantity":4}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "OUT_OF_STOCK", env.Error.Code)
		assert.InDelta(t, 5, env.Error.Details["availableStock"], 0)
		assert.InDelta(t, 2, env.Error.Details["currentQuantity"], 0)
	})

	t.Run("missing product id is a validation error", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/cart/add", buyerToken, `{"quantity":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "required", env.Error.Details["productId"])
	})

	t.Run("update passes zero through so the item is removed", func(t *testing.T) {
		api := newTestAPI(t)
		itemID := uuid.New()

		api.cartUC.EXPECT().
			UpdateItem(mock.Anything, api.buyer.UserID, itemID, 0, usecase.CartSelection(nil)).
			Return(emptyView(api.buyer.UserID), nil)

		rec := api.do(http.MethodPut, "/api/cart/update/"+itemID.String(), buyerToken, `{"quantity":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("removing an unknown item is not found", func(t *testing.T) {
		api := newTestAPI(t)
		itemID := uuid.New()

		api.cartUC.EXPECT().
			RemoveItem(mock.Anything, api.buyer.UserID, itemID, usecase.CartSelection(nil)).
			Return(nil, domainerrors.ErrCartItemNotFound)

		rec := api.do(http.MethodDelete, "/api/cart/remove/"+itemID.String(), buyerToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CART_ITEM_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("bulk remove needs at least one id", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodDelete, "/api/cart/remove-multiple", buyerToken, `{"itemIds":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bulk remove", func(t *testing.T) {
		api := newTestAPI(t)
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		api.cartUC.EXPECT().
			RemoveItems(mock.Anything, api.buyer.UserID, ids, usecase.CartSelection(nil)).
			Return(emptyView(api.buyer.UserID), nil)

		rec := api.do(http.MethodDelete, "/api/cart/remove-multiple", buyerToken,
			`{"itemIds":["`+ids[0].String()+`","`+ids[1].String()+`"]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bulk remove skips ids that cannot name an item", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()

		api.cartUC.EXPECT().
			RemoveItems(mock.Anything, api.buyer.UserID, []uuid.UUID{id}, usecase.CartSelection(nil)).
			Return(emptyView(api.buyer.UserID), nil)

		rec := api.do(http.MethodDelete, "/api/cart/remove-multiple", buyerToken,
			`{"itemIds":["64f1c2ab9e1d2a0012345678","`+id.String()+`"]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bulk remove of only unknown ids succeeds", func(t *testing.T) {
		api := newTestAPI(t)

		api.cartUC.EXPECT().
			RemoveItems(mock.Anything, api.buyer.UserID, []uuid.UUID{}, usecase.CartSelection(nil)).
			Return(emptyView(api.buyer.UserID), nil)

		rec := api.do(http.MethodDelete, "/api/cart/remove-multiple", buyerToken,
			`{"itemIds":["64f1c2ab9e1d2a0012345678"]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unexpected failures are hidden behind a generic 500", func(t *testing.T) {
		api := newTestAPI(t)

		api.cartUC.EXPECT().
			GetCart(mock.Anything, api.buyer.UserID, usecase.CartSelection(nil)).
			Return(nil, assert.AnError)

		rec := api.do(http.MethodGet, "/api/cart", buyerToken, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})

	t.Run("clear", func(t *testing.T) {
		api := newTestAPI(t)

		api.cartUC.EXPECT().Clear(mock.Anything, api.buyer.UserID).Return(emptyView(api.buyer.UserID), nil)

		rec := api.do(http.MethodDelete, "/api/cart/clear", buyerToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("review rejects unknown status", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPatch, "/api/admin/seller-applications/"+uuid.NewString(), adminToken, `{"status":"pending"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("review approves", func(t *testing.T) {
		api := newTestAPI(t)
		userID := uuid.New()

		approved := &entity.User{ID: userID, Email: "ada@campus.edu", Role: entity.RoleSeller, SellerStatus: entity.SellerStatusApproved, IsVerified: true}
		api.adminUC.EXPECT().
			ReviewApplication(mock.Anything, userID, entity.SellerStatusApproved).
			Return(approved, nil)

		rec := api.do(http.MethodPatch, "/api/admin/seller-applications/"+userID.String(), adminToken, `{"status":"approved"}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body handler.UserResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, "seller", body.Role)
		assert.Equal(t, "approved", body.SellerStatus)
	})

	t.Run("invalid transition is a bad request", func(t *testing.T) {
		api := newTestAPI(t)
		userID := uuid.New()

		api.adminUC.EXPECT().
			ReviewApplication(mock.Anything, userID, entity.SellerStatusRejected).
			Return(nil, domainerrors.ErrInvalidStatusTransition)

		rec := api.do(http.MethodPatch, "/api/admin/seller-applications/"+userID.String(), adminToken, `{"status":"rejected"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_APPLICATION_STATE", decode(t, rec).Error.Code)
	})

	t.Run("delete passes the acting admin", func(t *testing.T) {
		api := newTestAPI(t)
		userID := uuid.New()

		api.adminUC.EXPECT().DeleteUser(mock.Anything, api.admin.UserID, userID).Return(nil)

		rec := api.do(http.MethodDelete, "/api/admin/users/"+userID.String(), adminToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("application listing parses filter and page", func(t *testing.T) {
		api := newTestAPI(t)

		api.adminUC.EXPECT().
			ListApplications(mock.Anything, entity.SellerStatusPending, entity.Page{Number: 2, Size: 5}).
			Return(&usecase.UserPage{Users: []*entity.User{}, Page: entity.Page{Number: 2, Size: 5}, Total: 6, TotalPages: 2}, nil)

		rec := api.do(http.MethodGet, "/api/admin/seller-applications?status=pending&page=2&limit=5", adminToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body handler.UserListResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, handler.Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2}, body.Pagination)
	})
}

func TestPublicRoutes(t *testing.T) {
	t.Run("image is streamed with its content type", func(t *testing.T) {
		api := newTestAPI(t)
		ref := uuid.NewString() + ".png"

		api.imageUC.EXPECT().Open(mock.Anything, ref).
			Return(io.NopCloser(strings.NewReader("png-bytes")), &service.ObjectInfo{Ref: ref, ContentType: "image/png", Size: 9}, nil)

		rec := api.do(http.MethodGet, "/api/images/"+ref, "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("missing image is not found", func(t *testing.T) {
		api := newTestAPI(t)

		api.imageUC.EXPECT().Open(mock.Anything, "nope").Return(nil, nil, domainerrors.ErrImageNotFound)

		rec := api.do(http.MethodGet, "/api/images/nope", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("shop qr code is a png", func(t *testing.T) {
		api := newTestAPI(t)
		shopID := uuid.New()

		api.shopUC.EXPECT().ShopQRCode(mock.Anything, shopID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		rec := api.do(http.MethodGet, "/api/shops/"+shopID.String()+"/qrcode", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("malformed shop id", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/shops/not-a-uuid", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown route uses the error envelope", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/nowhere", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decode(t, rec).Error.Code)
	})
}
