// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	BookHandler    *handler.BookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	bookHandler    *handler.BookHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		bookHandler:    params.BookHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.Signup)
		authGroup.POST("/signin", r.accountHandler.Signin)
	}

	booksGroup := api.Group("/books")
	booksGroup.Use(r.authMiddleware.Authenticate)
	{
		booksGroup.GET("", r.bookHandler.List)
		booksGroup.POST("", r.bookHandler.Create)
		booksGroup.GET("/:id", r.bookHandler.Get)
		booksGroup.PUT("/:id", r.bookHandler.Update)
		booksGroup.DELETE("/:id", r.bookHandler.Delete)
	}
}
