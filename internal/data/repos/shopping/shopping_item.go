package shopping

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

type ShoppingItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *types.ShoppingItem) (*types.ShoppingItem, error)
	// GetByID resolves an item scoped to its owning list; an id that exists
	// under a different list yields gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, tx *gorm.DB, listID, itemID uuid.UUID) (*types.ShoppingItem, error)
	ListByList(ctx context.Context, tx *gorm.DB, listID uuid.UUID, offset, limit int) ([]*types.ShoppingItem, error)
	CountByList(ctx context.Context, tx *gorm.DB, listID uuid.UUID) (int64, error)
	UnpurchasedPreview(ctx context.Context, tx *gorm.DB, listID uuid.UUID, limit int) ([]types.ItemPreview, error)
	UnpurchasedNameExists(ctx context.Context, tx *gorm.DB, listID uuid.UUID, name string, excludeItemID uuid.UUID) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
	DeletePurchased(ctx context.Context, tx *gorm.DB, listID uuid.UUID) (int64, error)
}

type shoppingItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShoppingItemRepo(db *gorm.DB, baseLog *logger.Logger) ShoppingItemRepo {
	repoLog := baseLog.With("repo", "ShoppingItemRepo")
	return &shoppingItemRepo{db: db, log: repoLog}
}

func (r *shoppingItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.ShoppingItem) (*types.ShoppingItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *shoppingItemRepo) GetByID(ctx context.Context, tx *gorm.DB, listID, itemID uuid.UUID) (*types.ShoppingItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ShoppingItem
	if err := transaction.WithContext(ctx).
		Where("id = ? AND shopping_list_id = ?", itemID, listID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// ListByList pages through one list's items, unpurchased first, then stable
// insertion order within each group.
func (r *shoppingItemRepo) ListByList(ctx context.Context, tx *gorm.DB, listID uuid.UUID, offset, limit int) ([]*types.ShoppingItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ShoppingItem
	q := transaction.WithContext(ctx).
		Where("shopping_list_id = ?", listID).
		Order("purchased ASC, created_at ASC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *shoppingItemRepo) CountByList(ctx context.Context, tx *gorm.DB, listID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ShoppingItem{}).
		Where("shopping_list_id = ?", listID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UnpurchasedPreview computes the name-only projection for list detail
// views. Recomputed on every read; items mutate independently so this must
// never be cached or persisted.
func (r *shoppingItemRepo) UnpurchasedPreview(ctx context.Context, tx *gorm.DB, listID uuid.UUID, limit int) ([]types.ItemPreview, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := make([]types.ItemPreview, 0, limit)
	if err := transaction.WithContext(ctx).
		Model(&types.ShoppingItem{}).
		Select("name").
		Where("shopping_list_id = ? AND purchased = ?", listID, false).
		Order("created_at ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UnpurchasedNameExists is the read half of the uniqueness guard. Pass
// excludeItemID when re-checking during an update so the item does not
// collide with itself.
func (r *shoppingItemRepo) UnpurchasedNameExists(ctx context.Context, tx *gorm.DB, listID uuid.UUID, name string, excludeItemID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).
		Model(&types.ShoppingItem{}).
		Where("shopping_list_id = ? AND name = ? AND purchased = ?", listID, name, false)
	if excludeItemID != uuid.Nil {
		q = q.Where("id <> ?", excludeItemID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *shoppingItemRepo) Update(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, updates map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.ShoppingItem{}).
		Where("id = ?", itemID).
		Updates(updates).Error
}

func (r *shoppingItemRepo) Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&types.ShoppingItem{}).Error
}

func (r *shoppingItemRepo) DeletePurchased(ctx context.Context, tx *gorm.DB, listID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("shopping_list_id = ? AND purchased = ?", listID, true).
		Delete(&types.ShoppingItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
