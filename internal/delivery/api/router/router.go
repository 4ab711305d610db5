// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"peterparts/config"
	"peterparts/internal/delivery/api/middleware"
	"peterparts/internal/delivery/api/router/handler"
	"peterparts/internal/infra/metrics"
	"peterparts/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	HealthHandler  *handler.HealthHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	healthHandler  *handler.HealthHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		healthHandler:  params.HealthHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Live)
	e.GET("/health/ready", r.healthHandler.Ready)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	e.GET(storage.ServePath+"/*", r.imageHandler.Serve)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/otp/send", r.authHandler.SendOTP)
		authGroup.POST("/otp/verify", r.authHandler.VerifyOTP)
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	productsGroup := e.Group("/products")
	productsGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		productsGroup.GET("", r.productHandler.List)
		productsGroup.GET("/:id", r.productHandler.Get)

		writes := r.productWriteGuards()
		productsGroup.POST("", r.productHandler.Create, writes...)
		productsGroup.PUT("/:id", r.productHandler.Update, writes...)
		productsGroup.DELETE("/:id", r.productHandler.Delete, writes...)
		productsGroup.POST("/:id/images", r.productHandler.UploadImage, writes...)
	}
}

// productWriteGuards gates catalog writes to administrators when
// auth.protectProductWrites is on. Otherwise writes stay open.
func (r *router) productWriteGuards() []echo.MiddlewareFunc {
	if r.config.Auth == nil || !r.config.Auth.ProtectProductWrites {
		return nil
	}

	return []echo.MiddlewareFunc{r.authMiddleware.RequireAdmin()}
}
