// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/router/handler"
	"market/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler    *handler.ShopHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler    *handler.ShopHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler:    params.ShopHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	shopGroup := e.Group("/shops")
	{
		shopGroup.GET("/:uuid", r.shopHandler.GetShop)
		shopGroup.GET("/:uuid/qr", r.shopHandler.StorefrontQR)
	}

	// Admin routes manage any shop and require the "admin" role
	adminGroup := e.Group("/admin/shops")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.POST("", r.shopHandler.CreateShop)
		adminGroup.PUT("/:uuid", r.shopHandler.UpdateShop)
		adminGroup.DELETE("", r.shopHandler.DeleteShops)
		adminGroup.PUT("/:id/verify", r.shopHandler.ToggleVerify)
	}

	// Seller routes are scoped to the authenticated seller's own shop
	sellerGroup := e.Group("/seller/shop")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	sellerGroup.Use(r.authMiddleware.RequireRole(entity.RoleSeller.String()))
	{
		sellerGroup.PUT("/:uuid", r.shopHandler.UpdateMyShop)
	}
}
