package app

import (
	"github.com/gin-gonic/gin"

	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
	"github.com/shoplist-app/shoplist-backend/internal/server"
)

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:                 log,
		AuthMiddleware:      middleware.Auth,
		HealthHandler:       handlers.Health,
		UserHandler:         handlers.User,
		ShoppingListHandler: handlers.ShoppingList,
		ShoppingItemHandler: handlers.ShoppingItem,
	})
}
