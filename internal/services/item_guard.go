package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	shoppingrepo "github.com/shoplist-app/shoplist-backend/internal/data/repos/shopping"
)

// ItemUniquenessGuard rejects a second unpurchased item with the same name
// on one list. The read here is inherently check-then-act: two concurrent
// creates can both pass it. The partial unique index installed by
// db.EnsureShoppingIndexes is the authoritative arbiter; a constraint
// violation at commit is mapped to the same validation outcome by MapError,
// so callers cannot tell which side caught the duplicate.
type ItemUniquenessGuard struct {
	itemRepo shoppingrepo.ShoppingItemRepo
}

func NewItemUniquenessGuard(itemRepo shoppingrepo.ShoppingItemRepo) ItemUniquenessGuard {
	return ItemUniquenessGuard{itemRepo: itemRepo}
}

// Check returns a validation error when an unpurchased item named name
// already exists on the list. excludeItemID exempts the item being updated
// from colliding with itself; pass uuid.Nil on create.
func (g ItemUniquenessGuard) Check(ctx context.Context, tx *gorm.DB, listID uuid.UUID, name string, excludeItemID uuid.UUID) error {
	exists, err := g.itemRepo.UnpurchasedNameExists(ctx, tx, listID, name, excludeItemID)
	if err != nil {
		return err
	}
	if exists {
		return ValidationError("an unpurchased item with this name already exists on the list")
	}
	return nil
}
