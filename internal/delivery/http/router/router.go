// Package router contains routing and server setup for the HTTP
// delivery.
package router

import (
	"agriconnect/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	OrderHandler        *handler.OrderHandler
	StoreHandler        *handler.StoreHandler
	ProductHandler      *handler.ProductHandler
	AddressHandler      *handler.AddressHandler
	NotificationHandler *handler.NotificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	orderHandler        *handler.OrderHandler
	storeHandler        *handler.StoreHandler
	productHandler      *handler.ProductHandler
	addressHandler      *handler.AddressHandler
	notificationHandler *handler.NotificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		orderHandler:        params.OrderHandler,
		storeHandler:        params.StoreHandler,
		productHandler:      params.ProductHandler,
		addressHandler:      params.AddressHandler,
		notificationHandler: params.NotificationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application. The
// paths are flat because the mobile clients already ship with them.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration routes, one per role
	registerGroup := e.Group("/register")
	{
		registerGroup.POST("/buyer", r.registrationHandler.RegisterBuyer)
		registerGroup.POST("/seller", r.registrationHandler.RegisterSeller)
		registerGroup.POST("/rider", r.registrationHandler.RegisterRider)
	}

	// Order routes: the full order endpoint and the older lightweight one
	e.POST("/createorder", r.orderHandler.CreateOrder)
	e.POST("/orders", r.orderHandler.CreateOrderSummary)

	// Store and product catalog routes
	e.POST("/createstore", r.storeHandler.CreateStore)
	e.PUT("/updatestore/:storeId", r.storeHandler.UpdateStore)
	e.POST("/createproduct", r.productHandler.CreateProduct)
	e.PUT("/updateproduct/:productId", r.productHandler.UpdateProduct)

	// Address capture routes
	e.POST("/createaddress", r.addressHandler.CreateDeliveryAddress)
	e.POST("/createriderlocation", r.addressHandler.CreateRiderLocation)

	// Ad-hoc push notifications
	e.POST("/send-notification", r.notificationHandler.SendNotification)
}
