package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/shoplist-app/shoplist-backend/internal/http/handlers"
	"github.com/shoplist-app/shoplist-backend/internal/http/middleware"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log                 *logger.Logger
	AuthMiddleware      *middleware.AuthMiddleware
	HealthHandler       *handlers.HealthHandler
	UserHandler         *handlers.UserHandler
	ShoppingListHandler *handlers.ShoppingListHandler
	ShoppingItemHandler *handlers.ShoppingItemHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(otelgin.Middleware("shoplist-backend"))
	router.Use(middleware.RequestLogger(cfg.Log))

	// Public
	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	api.GET("/users/me", cfg.UserHandler.GetMe)
	api.POST("/users", cfg.UserHandler.CreateUser)

	api.GET("/shopping-lists", cfg.ShoppingListHandler.ListLists)
	api.POST("/shopping-lists", cfg.ShoppingListHandler.CreateList)
	api.GET("/shopping-lists/:id", cfg.ShoppingListHandler.GetList)
	api.PUT("/shopping-lists/:id", cfg.ShoppingListHandler.UpdateList)
	api.PATCH("/shopping-lists/:id", cfg.ShoppingListHandler.PatchList)
	api.DELETE("/shopping-lists/:id", cfg.ShoppingListHandler.DeleteList)

	api.GET("/shopping-lists/:id/shopping-items", cfg.ShoppingItemHandler.ListItems)
	api.POST("/shopping-lists/:id/shopping-items", cfg.ShoppingItemHandler.CreateItem)
	api.DELETE("/shopping-lists/:id/shopping-items/purchased", cfg.ShoppingItemHandler.DeletePurchased)
	api.GET("/shopping-lists/:id/shopping-items/:itemId", cfg.ShoppingItemHandler.GetItem)
	api.PUT("/shopping-lists/:id/shopping-items/:itemId", cfg.ShoppingItemHandler.UpdateItem)
	api.PATCH("/shopping-lists/:id/shopping-items/:itemId", cfg.ShoppingItemHandler.PatchItem)
	api.DELETE("/shopping-lists/:id/shopping-items/:itemId", cfg.ShoppingItemHandler.DeleteItem)

	return router
}
