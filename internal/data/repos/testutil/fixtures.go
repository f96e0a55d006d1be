package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/shoplist-app/shoplist-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedStaff(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := SeedUser(tb, ctx, tx, email)
	if err := tx.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", u.ID).
		Update("staff", true).Error; err != nil {
		tb.Fatalf("seed staff flag: %v", err)
	}
	u.Staff = true
	return u
}

// SeedList creates a list with the given member, mirroring the creation
// invariant that a list is never born without its creator in the members set.
func SeedList(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, member *types.User) *types.ShoppingList {
	tb.Helper()
	sl := &types.ShoppingList{
		ID:              uuid.New(),
		Name:            name,
		LastInteraction: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(sl).Error; err != nil {
		tb.Fatalf("seed shopping list: %v", err)
	}
	if member != nil {
		if err := tx.WithContext(ctx).Exec(`
			INSERT INTO shopping_list_member (shopping_list_id, user_id) VALUES (?, ?);
		`, sl.ID, member.ID).Error; err != nil {
			tb.Fatalf("seed membership: %v", err)
		}
	}
	return sl
}

func SeedItem(tb testing.TB, ctx context.Context, tx *gorm.DB, listID uuid.UUID, name string, purchased bool) *types.ShoppingItem {
	tb.Helper()
	it := &types.ShoppingItem{
		ID:             uuid.New(),
		Name:           name,
		Purchased:      purchased,
		ShoppingListID: listID,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed shopping item: %v", err)
	}
	return it
}
