// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"flora/internal/delivery/http/middleware"
	"flora/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	RoomHandler     *handler.RoomHandler
	StrainHandler   *handler.StrainHandler
	NutrientHandler *handler.NutrientHandler
	PlantHandler    *handler.PlantHandler
	EventHandler    *handler.EventHandler
	FavoriteHandler *handler.FavoriteHandler
	MediaHandler    *handler.MediaHandler

	RequestIDMiddleware *middleware.RequestIDMiddleware
	AuthMiddleware      *middleware.AuthMiddleware
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
// Identity resolution runs on every route; everything except health,
// registration and login additionally requires a principal.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.AuthMiddleware.Authenticate)

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/me", r.params.AuthHandler.Me, r.params.AuthMiddleware.RequirePrincipal)
	}

	userGroup := e.Group("/users", r.params.AuthMiddleware.RequirePrincipal)
	{
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.GET("/search", r.params.UserHandler.Search)
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.PUT("/:id", r.params.UserHandler.Update)
		userGroup.PATCH("/:id/role", r.params.UserHandler.UpdateRole)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete)
	}

	roomGroup := e.Group("/rooms", r.params.AuthMiddleware.RequirePrincipal)
	{
		roomGroup.POST("", r.params.RoomHandler.Create)
		roomGroup.GET("", r.params.RoomHandler.List)
		roomGroup.GET("/:id", r.params.RoomHandler.Get)
		roomGroup.PUT("/:id", r.params.RoomHandler.Update)
		roomGroup.DELETE("/:id", r.params.RoomHandler.Delete)
	}

	strainGroup := e.Group("/strains", r.params.AuthMiddleware.RequirePrincipal)
	{
		strainGroup.POST("", r.params.StrainHandler.Create)
		strainGroup.GET("", r.params.StrainHandler.List)
		strainGroup.GET("/search", r.params.StrainHandler.Search)
		strainGroup.GET("/:id", r.params.StrainHandler.Get)
		strainGroup.PUT("/:id", r.params.StrainHandler.Update)
		strainGroup.DELETE("/:id", r.params.StrainHandler.Delete)
	}

	nutrientGroup := e.Group("/nutrients", r.params.AuthMiddleware.RequirePrincipal)
	{
		nutrientGroup.POST("", r.params.NutrientHandler.Create)
		nutrientGroup.GET("", r.params.NutrientHandler.List)
		nutrientGroup.GET("/:id", r.params.NutrientHandler.Get)
		nutrientGroup.PUT("/:id", r.params.NutrientHandler.Update)
		nutrientGroup.DELETE("/:id", r.params.NutrientHandler.Delete)
	}

	plantGroup := e.Group("/plants", r.params.AuthMiddleware.RequirePrincipal)
	{
		plantGroup.POST("", r.params.PlantHandler.Create)
		plantGroup.GET("", r.params.PlantHandler.List)
		plantGroup.GET("/search", r.params.PlantHandler.Search)
		plantGroup.GET("/room/:roomId", r.params.PlantHandler.ListByRoom)
		plantGroup.GET("/:id", r.params.PlantHandler.Get)
		plantGroup.PUT("/:id", r.params.PlantHandler.Update)
		plantGroup.DELETE("/:id", r.params.PlantHandler.Delete)
	}

	eventGroup := e.Group("/events", r.params.AuthMiddleware.RequirePrincipal)
	{
		eventGroup.POST("", r.params.EventHandler.Create)
		eventGroup.GET("", r.params.EventHandler.List)
		eventGroup.GET("/kind/:kind", r.params.EventHandler.ListByKind)
		eventGroup.GET("/plant/:plantId", r.params.EventHandler.ListByPlant)
		eventGroup.GET("/date/:date", r.params.EventHandler.ListByDate)
		eventGroup.GET("/after/:date", r.params.EventHandler.ListAfter)
		eventGroup.GET("/:id", r.params.EventHandler.Get)
		eventGroup.PUT("/:id", r.params.EventHandler.Update)
		eventGroup.DELETE("/:id", r.params.EventHandler.Delete)
	}

	favoriteGroup := e.Group("/favorites", r.params.AuthMiddleware.RequirePrincipal)
	{
		favoriteGroup.POST("/:kind/:id", r.params.FavoriteHandler.Add)
		favoriteGroup.DELETE("/:kind/:id", r.params.FavoriteHandler.Remove)
		favoriteGroup.GET("/:kind", r.params.FavoriteHandler.List)
	}

	e.POST("/media", r.params.MediaHandler.Upload, r.params.AuthMiddleware.RequirePrincipal)
}
