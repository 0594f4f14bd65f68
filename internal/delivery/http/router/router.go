// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"washify/internal/delivery/http/middleware"
	"washify/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	DashboardHandler    *handler.DashboardHandler
	OrderHandler        *handler.OrderHandler
	UserHandler         *handler.UserHandler
	BranchHandler       *handler.BranchHandler
	ServiceHandler      *handler.ServiceHandler
	ShipperHandler      *handler.ShipperHandler
	PromotionHandler    *handler.PromotionHandler
	NotificationHandler *handler.NotificationHandler
	SessionMiddleware   *middleware.SessionMiddleware
	RequestScope        *middleware.RequestScopeMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestScope.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/me", r.params.AuthHandler.Me)
	}

	// Everything below requires an active session.
	api := e.Group("/api")
	api.Use(r.params.SessionMiddleware.RequireSession)

	api.GET("/dashboard/stats", r.params.DashboardHandler.Stats)

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("", r.params.OrderHandler.List)
		orderGroup.POST("/refresh", r.params.OrderHandler.Refresh)
		orderGroup.GET("/export", r.params.OrderHandler.Export)
		orderGroup.GET("/:id", r.params.OrderHandler.GetByID)
		orderGroup.PATCH("/:id/status", r.params.OrderHandler.UpdateStatus)
	}

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.POST("/refresh", r.params.UserHandler.Refresh)
		userGroup.GET("/export", r.params.UserHandler.Export)
		userGroup.GET("/:id", r.params.UserHandler.GetByID)
		userGroup.PATCH("/:id/toggle", r.params.UserHandler.ToggleActive)
		userGroup.DELETE("/:id", r.params.UserHandler.SoftDelete)
	}

	branchGroup := api.Group("/branches")
	{
		branchGroup.GET("", r.params.BranchHandler.List)
		branchGroup.GET("/active", r.params.BranchHandler.ListActive)
		branchGroup.POST("", r.params.BranchHandler.Create)
		branchGroup.POST("/refresh", r.params.BranchHandler.Refresh)
		branchGroup.GET("/export", r.params.BranchHandler.Export)
		branchGroup.GET("/:id", r.params.BranchHandler.GetByID)
		branchGroup.PUT("/:id", r.params.BranchHandler.Update)
		branchGroup.PATCH("/:id/toggle", r.params.BranchHandler.ToggleActive)
		branchGroup.DELETE("/:id", r.params.BranchHandler.SoftDelete)
	}

	serviceGroup := api.Group("/services")
	{
		serviceGroup.GET("", r.params.ServiceHandler.List)
		serviceGroup.GET("/active", r.params.ServiceHandler.ListActive)
		serviceGroup.POST("", r.params.ServiceHandler.Create)
		serviceGroup.POST("/refresh", r.params.ServiceHandler.Refresh)
		serviceGroup.GET("/export", r.params.ServiceHandler.Export)
		serviceGroup.GET("/:id", r.params.ServiceHandler.GetByID)
		serviceGroup.PUT("/:id", r.params.ServiceHandler.Update)
		serviceGroup.PATCH("/:id/toggle", r.params.ServiceHandler.ToggleActive)
		serviceGroup.DELETE("/:id", r.params.ServiceHandler.SoftDelete)
	}

	shipperGroup := api.Group("/shippers")
	{
		shipperGroup.GET("", r.params.ShipperHandler.List)
		shipperGroup.POST("", r.params.ShipperHandler.Create)
		shipperGroup.POST("/refresh", r.params.ShipperHandler.Refresh)
		shipperGroup.GET("/export", r.params.ShipperHandler.Export)
		shipperGroup.GET("/:id", r.params.ShipperHandler.GetByID)
		shipperGroup.GET("/:id/statistics", r.params.ShipperHandler.Statistics)
		shipperGroup.PUT("/:id", r.params.ShipperHandler.Update)
		shipperGroup.PATCH("/:id/toggle", r.params.ShipperHandler.ToggleActive)
		shipperGroup.DELETE("/:id", r.params.ShipperHandler.SoftDelete)
	}

	promotionGroup := api.Group("/promotions")
	{
		promotionGroup.GET("", r.params.PromotionHandler.List)
		promotionGroup.GET("/active", r.params.PromotionHandler.ListActive)
		promotionGroup.POST("", r.params.PromotionHandler.Create)
		promotionGroup.POST("/refresh", r.params.PromotionHandler.Refresh)
		promotionGroup.GET("/export", r.params.PromotionHandler.Export)
		promotionGroup.GET("/:id", r.params.PromotionHandler.GetByID)
		promotionGroup.PUT("/:id", r.params.PromotionHandler.Update)
		promotionGroup.PATCH("/:id/toggle", r.params.PromotionHandler.ToggleActive)
		promotionGroup.DELETE("/:id", r.params.PromotionHandler.SoftDelete)
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.GET("/unread/count", r.params.NotificationHandler.UnreadCount)
		notificationGroup.PATCH("/:id/read", r.params.NotificationHandler.MarkRead)
		notificationGroup.PATCH("/read-all", r.params.NotificationHandler.MarkAllRead)
	}
}
