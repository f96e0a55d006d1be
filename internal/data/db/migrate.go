package db

import (
	"fmt"

	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.User{},
		&types.ShoppingList{},
		&types.ShoppingItem{},
	)
}

// EnsureShoppingIndexes creates the indexes GORM tags cannot express. The
// partial unique index is the authoritative guard against two unpurchased
// items sharing a name on one list: the application-level duplicate check is
// racy on its own, so concurrent inserts must be rejected by the store.
func EnsureShoppingIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_shopping_item_unpurchased_name
		ON shopping_item (shopping_list_id, name)
		WHERE purchased = false AND deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_shopping_item_unpurchased_name: %w", err)
	}

	// Item listings are always scoped to one list and ordered
	// unpurchased-first, then insertion order.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_shopping_item_list_purchased
		ON shopping_item (shopping_list_id, purchased, created_at);
	`).Error; err != nil {
		return fmt.Errorf("create idx_shopping_item_list_purchased: %w", err)
	}

	// Membership lookups run on every authorized request.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_shopping_list_member_user
		ON shopping_list_member (user_id, shopping_list_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_shopping_list_member_user: %w", err)
	}

	// Personal list view ordering.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_shopping_list_last_interaction
		ON shopping_list (last_interaction DESC, created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_shopping_list_last_interaction: %w", err)
	}

	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureShoppingIndexes(s.db); err != nil {
		s.log.Error("Shopping index migration failed", "error", err)
		return err
	}
	return nil
}
