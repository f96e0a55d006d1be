package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	shoppingrepo "github.com/shoplist-app/shoplist-backend/internal/data/repos/shopping"
	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

// ItemPage is one page of a list's items, unpurchased first.
type ItemPage struct {
	Items    []*types.ShoppingItem `json:"items"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Total    int64                 `json:"total"`
}

// ItemPatch carries a partial update; nil fields are left untouched.
type ItemPatch struct {
	Name      *string
	Purchased *bool
}

type ShoppingItemService interface {
	List(ctx context.Context, principal *types.User, listID uuid.UUID, page, pageSize int) (*ItemPage, error)
	Create(ctx context.Context, principal *types.User, listID uuid.UUID, name string, purchased bool) (*types.ShoppingItem, error)
	Get(ctx context.Context, principal *types.User, listID, itemID uuid.UUID) (*types.ShoppingItem, error)
	Update(ctx context.Context, principal *types.User, listID, itemID uuid.UUID, name string, purchased bool) (*types.ShoppingItem, error)
	Patch(ctx context.Context, principal *types.User, listID, itemID uuid.UUID, patch ItemPatch) (*types.ShoppingItem, error)
	Delete(ctx context.Context, principal *types.User, listID, itemID uuid.UUID) error
	DeletePurchased(ctx context.Context, principal *types.User, listID uuid.UUID) (int64, error)
}

type shoppingItemService struct {
	db              *gorm.DB
	log             *logger.Logger
	listRepo        shoppingrepo.ShoppingListRepo
	itemRepo        shoppingrepo.ShoppingItemRepo
	authz           Authorizer
	guard           ItemUniquenessGuard
	publisher       ActivityPublisher
	defaultPageSize int
	maxPageSize     int
}

func NewShoppingItemService(
	db *gorm.DB,
	baseLog *logger.Logger,
	listRepo shoppingrepo.ShoppingListRepo,
	itemRepo shoppingrepo.ShoppingItemRepo,
	authz Authorizer,
	publisher ActivityPublisher,
	defaultPageSize int,
	maxPageSize int,
) ShoppingItemService {
	return &shoppingItemService{
		db:              db,
		log:             baseLog.With("service", "ShoppingItemService"),
		listRepo:        listRepo,
		itemRepo:        itemRepo,
		authz:           authz,
		guard:           NewItemUniquenessGuard(itemRepo),
		publisher:       publisher,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// resolveList loads the owning list and authorizes the principal against it.
// Existence always wins over authorization for status mapping.
func (s *shoppingItemService) resolveList(ctx context.Context, tx *gorm.DB, principal *types.User, listID uuid.UUID, action Action) (*types.ShoppingList, error) {
	list, err := s.listRepo.GetByID(ctx, tx, listID)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanAccessList(principal, list, action) {
		return nil, ForbiddenError("not a member of this shopping list")
	}
	return list, nil
}

func (s *shoppingItemService) clampPageSize(pageSize int) int {
	if pageSize <= 0 {
		return s.defaultPageSize
	}
	if s.maxPageSize > 0 && pageSize > s.maxPageSize {
		return s.maxPageSize
	}
	return pageSize
}

func (s *shoppingItemService) List(ctx context.Context, principal *types.User, listID uuid.UUID, page, pageSize int) (*ItemPage, error) {
	list, err := s.resolveList(ctx, nil, principal, listID, ActionRead)
	if err != nil {
		return nil, MapError("list_items_failed", err)
	}

	if page < 1 {
		page = 1
	}
	pageSize = s.clampPageSize(pageSize)

	items, err := s.itemRepo.ListByList(ctx, nil, list.ID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, MapError("list_items_failed", err)
	}
	total, err := s.itemRepo.CountByList(ctx, nil, list.ID)
	if err != nil {
		return nil, MapError("list_items_failed", err)
	}
	return &ItemPage{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *shoppingItemService) Create(ctx context.Context, principal *types.User, listID uuid.UUID, name string, purchased bool) (*types.ShoppingItem, error) {
	if err := validateName(name); err != nil {
		return nil, MapError("invalid_name", err)
	}

	list, err := s.resolveList(ctx, nil, principal, listID, ActionWrite)
	if err != nil {
		return nil, MapError("create_item_failed", err)
	}

	item := &types.ShoppingItem{
		ID:             uuid.New(),
		Name:           name,
		Purchased:      purchased,
		ShoppingListID: list.ID,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !purchased {
			if err := s.guard.Check(ctx, tx, list.ID, name, uuid.Nil); err != nil {
				return err
			}
		}
		if _, err := s.itemRepo.Create(ctx, tx, item); err != nil {
			return err
		}
		return s.listRepo.TouchLastInteraction(ctx, tx, list.ID, time.Now().UTC())
	}); err != nil {
		return nil, MapError("create_item_failed", err)
	}

	s.publish(ctx, ActivityEvent{Event: EventItemCreated, ListID: list.ID, ActorID: principal.ID})
	return item, nil
}

func (s *shoppingItemService) Get(ctx context.Context, principal *types.User, listID, itemID uuid.UUID) (*types.ShoppingItem, error) {
	list, err := s.resolveList(ctx, nil, principal, listID, ActionRead)
	if err != nil {
		return nil, MapError("get_item_failed", err)
	}

	item, err := s.itemRepo.GetByID(ctx, nil, list.ID, itemID)
	if err != nil {
		return nil, MapError("get_item_failed", err)
	}
	return item, nil
}

// Update is a full replace: name and purchased both required by the handler.
func (s *shoppingItemService) Update(ctx context.Context, principal *types.User, listID, itemID uuid.UUID, name string, purchased bool) (*types.ShoppingItem, error) {
	return s.applyUpdate(ctx, principal, listID, itemID, ItemPatch{Name: &name, Purchased: &purchased})
}

// Patch applies any subset of fields.
func (s *shoppingItemService) Patch(ctx context.Context, principal *types.User, listID, itemID uuid.UUID, patch ItemPatch) (*types.ShoppingItem, error) {
	return s.applyUpdate(ctx, principal, listID, itemID, patch)
}

func (s *shoppingItemService) applyUpdate(ctx context.Context, principal *types.User, listID, itemID uuid.UUID, patch ItemPatch) (*types.ShoppingItem, error) {
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, MapError("invalid_name", err)
		}
	}

	list, err := s.resolveList(ctx, nil, principal, listID, ActionWrite)
	if err != nil {
		return nil, MapError("update_item_failed", err)
	}

	var updated *types.ShoppingItem
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.itemRepo.GetByID(ctx, tx, list.ID, itemID)
		if err != nil {
			return err
		}

		name := item.Name
		if patch.Name != nil {
			name = *patch.Name
		}
		purchased := item.Purchased
		if patch.Purchased != nil {
			purchased = *patch.Purchased
		}

		// Renaming or flipping back to unpurchased can collide with an
		// existing unpurchased item just like a create can.
		if !purchased {
			if err := s.guard.Check(ctx, tx, list.ID, name, item.ID); err != nil {
				return err
			}
		}

		if err := s.itemRepo.Update(ctx, tx, item.ID, map[string]any{
			"name":      name,
			"purchased": purchased,
		}); err != nil {
			return err
		}
		if err := s.listRepo.TouchLastInteraction(ctx, tx, list.ID, time.Now().UTC()); err != nil {
			return err
		}

		item.Name = name
		item.Purchased = purchased
		updated = item
		return nil
	}); err != nil {
		return nil, MapError("update_item_failed", err)
	}

	s.publish(ctx, ActivityEvent{Event: EventItemUpdated, ListID: list.ID, ActorID: principal.ID})
	return updated, nil
}

func (s *shoppingItemService) Delete(ctx context.Context, principal *types.User, listID, itemID uuid.UUID) error {
	list, err := s.resolveList(ctx, nil, principal, listID, ActionWrite)
	if err != nil {
		return MapError("delete_item_failed", err)
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.itemRepo.GetByID(ctx, tx, list.ID, itemID)
		if err != nil {
			return err
		}
		if err := s.itemRepo.Delete(ctx, tx, item.ID); err != nil {
			return err
		}
		return s.listRepo.TouchLastInteraction(ctx, tx, list.ID, time.Now().UTC())
	}); err != nil {
		return MapError("delete_item_failed", err)
	}

	s.publish(ctx, ActivityEvent{Event: EventItemDeleted, ListID: list.ID, ActorID: principal.ID})
	return nil
}

// DeletePurchased clears every purchased item from one list. Scoped to the
// list and membership-checked like any other write.
func (s *shoppingItemService) DeletePurchased(ctx context.Context, principal *types.User, listID uuid.UUID) (int64, error) {
	list, err := s.resolveList(ctx, nil, principal, listID, ActionWrite)
	if err != nil {
		return 0, MapError("delete_purchased_failed", err)
	}

	var removed int64
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.itemRepo.DeletePurchased(ctx, tx, list.ID)
		if err != nil {
			return err
		}
		removed = n
		if n == 0 {
			return nil
		}
		return s.listRepo.TouchLastInteraction(ctx, tx, list.ID, time.Now().UTC())
	}); err != nil {
		return 0, MapError("delete_purchased_failed", err)
	}

	if removed > 0 {
		s.publish(ctx, ActivityEvent{Event: EventPurchasedPurged, ListID: list.ID, ActorID: principal.ID})
	}
	return removed, nil
}

func (s *shoppingItemService) publish(ctx context.Context, event ActivityEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Activity publish failed", "event", event.Event, "list_id", event.ListID, "error", err)
	}
}
