// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"iothub/internal/delivery/http/middleware"
	"iothub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	DeviceHandler    *handler.DeviceHandler
	GrantHandler     *handler.GrantHandler
	ParameterHandler *handler.ParameterHandler
	SubDeviceHandler *handler.SubDeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	deviceHandler    *handler.DeviceHandler
	grantHandler     *handler.GrantHandler
	parameterHandler *handler.ParameterHandler
	subDeviceHandler *handler.SubDeviceHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		deviceHandler:    params.DeviceHandler,
		grantHandler:     params.GrantHandler,
		parameterHandler: params.ParameterHandler,
		subDeviceHandler: params.SubDeviceHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Account routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.PUT("/email", r.userHandler.ChangeEmail)
		userGroup.DELETE("", r.userHandler.Delete)
		userGroup.POST("/push-tokens", r.userHandler.RegisterPushToken)
	}

	// Device routes that require authentication
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.Create)
		deviceGroup.GET("", r.deviceHandler.List)
		deviceGroup.GET("/:deviceId", r.deviceHandler.Get)
		deviceGroup.PUT("/:deviceId", r.deviceHandler.Update)
		deviceGroup.DELETE("/:deviceId", r.deviceHandler.Delete)

		deviceGroup.POST("/:deviceId/grants", r.grantHandler.Create)
		deviceGroup.GET("/:deviceId/grants", r.grantHandler.List)
		deviceGroup.DELETE("/:deviceId/grants/:email", r.grantHandler.Delete)

		deviceGroup.PUT("/:deviceId/parameters/:name", r.parameterHandler.Update)
	}

	// Sub-device routes that require authentication
	subDeviceGroup := e.Group("/sub-devices")
	subDeviceGroup.Use(r.authMiddleware.Authenticate)
	{
		subDeviceGroup.PUT("/:subDeviceId", r.subDeviceHandler.Rename)
	}
}
