// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cabinet/internal/delivery/api/middleware"
	"cabinet/internal/delivery/api/router/handler"
	"cabinet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AccountHandler *handler.AccountHandler
	ItemHandler    *handler.ItemHandler
	StockHandler   *handler.StockHandler
	GuardHandler   *handler.GuardHandler
	AuthMiddleware *middleware.AuthMiddleware
	RouteGuard     *middleware.RouteGuard
	GuardUC        usecase.GuardUsecase
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	accountHandler *handler.AccountHandler
	itemHandler    *handler.ItemHandler
	stockHandler   *handler.StockHandler
	guardHandler   *handler.GuardHandler
	authMiddleware *middleware.AuthMiddleware
	routeGuard     *middleware.RouteGuard
	guardUC        usecase.GuardUsecase
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		accountHandler: params.AccountHandler,
		itemHandler:    params.ItemHandler,
		stockHandler:   params.StockHandler,
		guardHandler:   params.GuardHandler,
		authMiddleware: params.AuthMiddleware,
		routeGuard:     params.RouteGuard,
		guardUC:        params.GuardUC,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Guard evaluation reads its own optional token
	e.POST(middleware.APIPrefix+"/session/guard", r.guardHandler.Evaluate)

	// API v1 routes: identified when a token is present, then gated by the
	// route guard, which answers every anonymous request
	apiV1 := e.Group(middleware.APIPrefix)
	apiV1.Use(r.authMiddleware.Identify)
	apiV1.Use(r.routeGuard.Guard)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.profileHandler.GetProfile)
		meGroup.PUT("/password", r.profileHandler.ChangePassword)
	}

	itemsGroup := apiV1.Group("/items")
	{
		itemsGroup.GET("", r.itemHandler.ListItems)
		itemsGroup.GET("/:id", r.itemHandler.GetItem)
		itemsGroup.GET("/:id/label", r.itemHandler.GetLabel)
	}

	stockGroup := apiV1.Group("/stock")
	{
		stockGroup.GET("", r.stockHandler.ListLevels)
		stockGroup.POST("/adjust", r.stockHandler.Adjust)
	}

	// Admin area: the guard's admin prefix decides where these live so the
	// staff restriction always covers them.
	adminGroup := apiV1.Group(r.guardUC.Policy().AdminPrefix)
	{
		adminGroup.POST("/users", r.accountHandler.CreateAccount)
		adminGroup.GET("/users", r.accountHandler.ListAccounts)
		adminGroup.PUT("/users/:id/password", r.accountHandler.ResetPassword)
		adminGroup.DELETE("/users/:id", r.accountHandler.DeleteAccount)

		adminGroup.POST("/items", r.itemHandler.CreateItem)
		adminGroup.PUT("/items/:id", r.itemHandler.UpdateItem)
		adminGroup.DELETE("/items/:id", r.itemHandler.DeleteItem)

		adminGroup.GET("/reports/stock", r.stockHandler.Report)
	}
}
