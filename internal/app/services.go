package app

import (
	"gorm.io/gorm"

	redisclient "github.com/shoplist-app/shoplist-backend/internal/clients/redis"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
	"github.com/shoplist-app/shoplist-backend/internal/services"
)

type Services struct {
	Identity     services.IdentityService
	User         services.UserService
	ShoppingList services.ShoppingListService
	ShoppingItem services.ShoppingItemService
	Activity     services.ActivityPublisher
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")

	// The activity bus is optional: no Redis address means mutations are
	// simply not broadcast.
	var activity services.ActivityPublisher
	if cfg.RedisAddr != "" {
		bus, err := redisclient.NewActivityBus(log, cfg.RedisAddr, cfg.RedisChannel)
		if err != nil {
			log.Warn("Activity bus init failed, continuing without it", "error", err)
		} else {
			activity = bus
		}
	}

	authz := services.NewAuthorizer(log)

	return Services{
		Identity:     services.NewIdentityService(log, repos.User, cfg.JWTSecretKey),
		User:         services.NewUserService(db, log, repos.User),
		ShoppingList: services.NewShoppingListService(db, log, repos.ShoppingList, repos.ShoppingItem, authz, activity),
		ShoppingItem: services.NewShoppingItemService(db, log, repos.ShoppingList, repos.ShoppingItem, authz, activity, cfg.DefaultPageSize, cfg.MaxPageSize),
		Activity:     activity,
	}
}
