// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kampuskart/config"
	"kampuskart/internal/delivery/api/middleware"
	"kampuskart/internal/delivery/api/router/handler"
	"kampuskart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler              *handler.AuthHandler
	SellerApplicationHandler *handler.SellerApplicationHandler
	AdminHandler             *handler.AdminHandler
	ShopHandler              *handler.ShopHandler
	ProductHandler           *handler.ProductHandler
	CartHandler              *handler.CartHandler
	ImageHandler             *handler.ImageHandler
	AuthMiddleware           *middleware.AuthMiddleware
	Config                   *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler              *handler.AuthHandler
	sellerApplicationHandler *handler.SellerApplicationHandler
	adminHandler             *handler.AdminHandler
	shopHandler              *handler.ShopHandler
	productHandler           *handler.ProductHandler
	cartHandler              *handler.CartHandler
	imageHandler             *handler.ImageHandler
	authMiddleware           *middleware.AuthMiddleware
	config                   *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:              params.AuthHandler,
		sellerApplicationHandler: params.SellerApplicationHandler,
		adminHandler:             params.AdminHandler,
		shopHandler:              params.ShopHandler,
		productHandler:           params.ProductHandler,
		cartHandler:              params.CartHandler,
		imageHandler:             params.ImageHandler,
		authMiddleware:           params.AuthMiddleware,
		config:                   params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authenticate := r.authMiddleware.Authenticate
	buyerArea := r.authMiddleware.RequireArea(entity.AreaBuyer)
	sellerArea := r.authMiddleware.RequireArea(entity.AreaSeller)
	adminArea := r.authMiddleware.RequireArea(entity.AreaAdmin)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		limited := middleware.NewAuthRateLimiter(r.config.HTTP.RateLimit)
		authGroup.POST("/register", r.authHandler.Register, limited)
		authGroup.POST("/login", r.authHandler.Login, limited)
		authGroup.POST("/check-email", r.authHandler.CheckEmail, limited)
		authGroup.POST("/refresh", r.authHandler.Refresh)

		authGroup.GET("/me", r.authHandler.Me, authenticate)
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, authenticate)
		authGroup.PUT("/change-password", r.authHandler.ChangePassword, authenticate)
	}

	// Seller applications are filed from the buyer side
	applicationsGroup := api.Group("/seller-applications", authenticate)
	{
		applicationsGroup.POST("", r.sellerApplicationHandler.Apply, buyerArea)
		applicationsGroup.GET("/me", r.sellerApplicationHandler.GetMine)
	}

	adminGroup := api.Group("/admin", authenticate, adminArea)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.GET("/seller-applications", r.adminHandler.ListApplications)
		adminGroup.PATCH("/seller-applications/:userId", r.adminHandler.ReviewApplication)
	}

	shopsGroup := api.Group("/shops")
	{
		shopsGroup.POST("", r.shopHandler.CreateShop, authenticate, sellerArea)
		shopsGroup.GET("/my-shop", r.shopHandler.GetMyShop, authenticate, sellerArea)
		shopsGroup.PUT("/my-shop", r.shopHandler.UpdateMyShop, authenticate, sellerArea)
		shopsGroup.DELETE("/my-shop", r.shopHandler.DeleteMyShop, authenticate, sellerArea)

		shopsGroup.GET("", r.shopHandler.ListShops)
		shopsGroup.GET("/:id", r.shopHandler.GetShop)
		shopsGroup.GET("/:id/qrcode", r.shopHandler.ShopQRCode)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct, authenticate, sellerArea)
		productsGroup.GET("/my-products", r.productHandler.ListMyProducts, authenticate, sellerArea)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, authenticate, sellerArea)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, authenticate, sellerArea)

		productsGroup.GET("", r.productHandler.ListMarketplace)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
	}

	cartGroup := api.Group("/cart", authenticate, buyerArea)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddItem)
		cartGroup.PUT("/update/:itemId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/remove/:itemId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("/remove-multiple", r.cartHandler.RemoveItems)
		cartGroup.DELETE("/clear", r.cartHandler.Clear)
	}

	api.GET("/images/:ref", r.imageHandler.GetImage)
}
