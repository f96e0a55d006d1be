package app

import (
	"gorm.io/gorm"

	shoppingrepo "github.com/shoplist-app/shoplist-backend/internal/data/repos/shopping"
	userrepo "github.com/shoplist-app/shoplist-backend/internal/data/repos/user"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

type Repos struct {
	User         userrepo.UserRepo
	ShoppingList shoppingrepo.ShoppingListRepo
	ShoppingItem shoppingrepo.ShoppingItemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         userrepo.NewUserRepo(db, log),
		ShoppingList: shoppingrepo.NewShoppingListRepo(db, log),
		ShoppingItem: shoppingrepo.NewShoppingItemRepo(db, log),
	}
}
