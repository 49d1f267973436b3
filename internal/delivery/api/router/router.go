// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"giftshop/internal/delivery/api/middleware"
	"giftshop/internal/delivery/api/router/handler"
	"giftshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	GiftHandler    *handler.GiftHandler
	OrderHandler   *handler.OrderHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	giftHandler    *handler.GiftHandler
	orderHandler   *handler.OrderHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		giftHandler:    params.GiftHandler,
		orderHandler:   params.OrderHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	apiV1 := e.Group("/api/v1")

	// Public catalog
	giftsGroup := apiV1.Group("/gifts")
	{
		giftsGroup.GET("", r.giftHandler.ListGifts)
		giftsGroup.GET("/recommendations", r.giftHandler.Recommend)
		giftsGroup.GET("/:id", r.giftHandler.GetGift)
	}

	// Catalog management (requires admin role)
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/gifts", r.giftHandler.CreateGift)
		adminGroup.PUT("/gifts/:id/stock", r.giftHandler.SetStock)
	}

	// Orders
	ordersGroup := apiV1.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:id", r.orderHandler.UpdateOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.GetTrackingQR)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.RotateToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}
}
