package app

import (
	"github.com/shoplist-app/shoplist-backend/internal/http/handlers"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	User         *handlers.UserHandler
	ShoppingList *handlers.ShoppingListHandler
	ShoppingItem *handlers.ShoppingItemHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:       handlers.NewHealthHandler(),
		User:         handlers.NewUserHandler(services.User),
		ShoppingList: handlers.NewShoppingListHandler(services.ShoppingList),
		ShoppingItem: handlers.NewShoppingItemHandler(services.ShoppingItem),
	}
}
