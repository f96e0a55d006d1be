package shopping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

type ShoppingListRepo interface {
	Create(ctx context.Context, tx *gorm.DB, list *types.ShoppingList) (*types.ShoppingList, error)
	GetByID(ctx context.Context, tx *gorm.DB, listID uuid.UUID) (*types.ShoppingList, error)
	ListForMember(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ShoppingList, error)
	UpdateName(ctx context.Context, tx *gorm.DB, listID uuid.UUID, name string) error
	TouchLastInteraction(ctx context.Context, tx *gorm.DB, listID uuid.UUID, at time.Time) error
	AddMember(ctx context.Context, tx *gorm.DB, listID, userID uuid.UUID) error
	IsMember(ctx context.Context, tx *gorm.DB, listID, userID uuid.UUID) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, listID uuid.UUID) error
}

type shoppingListRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShoppingListRepo(db *gorm.DB, baseLog *logger.Logger) ShoppingListRepo {
	repoLog := baseLog.With("repo", "ShoppingListRepo")
	return &shoppingListRepo{db: db, log: repoLog}
}

func (r *shoppingListRepo) Create(ctx context.Context, tx *gorm.DB, list *types.ShoppingList) (*types.ShoppingList, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID resolves a list with its members preloaded; membership is needed
// by every authorization decision downstream.
func (r *shoppingListRepo) GetByID(ctx context.Context, tx *gorm.DB, listID uuid.UUID) (*types.ShoppingList, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ShoppingList
	if err := transaction.WithContext(ctx).
		Preload("Members").
		Where("id = ?", listID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// ListForMember returns only the lists the user belongs to. Authorization on
// collections is a query filter, never a per-row check, so rows the user may
// not see are never fetched in the first place.
func (r *shoppingListRepo) ListForMember(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ShoppingList, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ShoppingList
	if err := transaction.WithContext(ctx).
		Joins("JOIN shopping_list_member slm ON slm.shopping_list_id = shopping_list.id").
		Where("slm.user_id = ?", userID).
		Order("shopping_list.last_interaction DESC, shopping_list.created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *shoppingListRepo) UpdateName(ctx context.Context, tx *gorm.DB, listID uuid.UUID, name string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.ShoppingList{}).
		Where("id = ?", listID).
		Updates(map[string]any{
			"name":             name,
			"last_interaction": time.Now().UTC(),
		}).Error
}

func (r *shoppingListRepo) TouchLastInteraction(ctx context.Context, tx *gorm.DB, listID uuid.UUID, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.ShoppingList{}).
		Where("id = ?", listID).
		Update("last_interaction", at).Error
}

func (r *shoppingListRepo) AddMember(ctx context.Context, tx *gorm.DB, listID, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Exec(`
		INSERT INTO shopping_list_member (shopping_list_id, user_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING;
	`, listID, userID).Error
}

func (r *shoppingListRepo) IsMember(ctx context.Context, tx *gorm.DB, listID, userID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Table("shopping_list_member").
		Where("shopping_list_id = ? AND user_id = ?", listID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the list, its membership rows and its items. The caller is
// expected to run it inside a transaction so the cascade is all-or-nothing.
func (r *shoppingListRepo) Delete(ctx context.Context, tx *gorm.DB, listID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("shopping_list_id = ?", listID).
		Delete(&types.ShoppingItem{}).Error; err != nil {
		return err
	}
	if err := transaction.WithContext(ctx).
		Exec(`DELETE FROM shopping_list_member WHERE shopping_list_id = ?;`, listID).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).
		Where("id = ?", listID).
		Delete(&types.ShoppingList{}).Error
}
