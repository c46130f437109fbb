// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"grocer/internal/delivery/http/middleware"
	"grocer/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	SeedHandler    *handler.SeedHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
	seedHandler    *handler.SeedHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		adminHandler:   params.AdminHandler,
		seedHandler:    params.SeedHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public catalog reads; writes require an admin account
	api.GET("/categories", r.catalogHandler.ListCategories)
	api.POST("/categories", r.catalogHandler.CreateCategory,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	api.PUT("/categories/:id", r.catalogHandler.UpdateCategory,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	api.DELETE("/categories/:id", r.catalogHandler.DeleteCategory,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)

	api.GET("/products", r.catalogHandler.ListProducts)
	api.GET("/products/:id", r.catalogHandler.GetProduct)
	api.POST("/products", r.catalogHandler.CreateProduct,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	api.PUT("/products/:id", r.catalogHandler.UpdateProduct,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	api.DELETE("/products/:id", r.catalogHandler.DeleteProduct,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)

	// Cart routes, owner-scoped
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddToCart)
		cartGroup.DELETE("/:id", r.cartHandler.RemoveFromCart)
	}

	// Order routes, owner-scoped
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	// Admin fulfillment surface
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/orders", r.adminHandler.ListAllOrders)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}

	// One-shot seed endpoint
	api.POST("/init-data", r.seedHandler.InitData)
}
