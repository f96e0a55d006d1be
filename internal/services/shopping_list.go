package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	shoppingrepo "github.com/shoplist-app/shoplist-backend/internal/data/repos/shopping"
	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

// ShoppingListDetail is the list representation for detail views: the list
// with members plus the bounded name-only preview of unpurchased items.
type ShoppingListDetail struct {
	*types.ShoppingList
	UnpurchasedItems []types.ItemPreview `json:"unpurchased_items"`
}

// ShoppingListService enforces the list aggregate's invariants. Every method
// takes the acting principal explicitly; there is no ambient caller state.
type ShoppingListService interface {
	Create(ctx context.Context, principal *types.User, name string) (*types.ShoppingList, error)
	ListForUser(ctx context.Context, principal *types.User) ([]*types.ShoppingList, error)
	Get(ctx context.Context, principal *types.User, listID uuid.UUID) (*ShoppingListDetail, error)
	UpdateName(ctx context.Context, principal *types.User, listID uuid.UUID, name string) (*types.ShoppingList, error)
	Delete(ctx context.Context, principal *types.User, listID uuid.UUID) error
}

type shoppingListService struct {
	db        *gorm.DB
	log       *logger.Logger
	listRepo  shoppingrepo.ShoppingListRepo
	itemRepo  shoppingrepo.ShoppingItemRepo
	authz     Authorizer
	publisher ActivityPublisher
}

func NewShoppingListService(
	db *gorm.DB,
	baseLog *logger.Logger,
	listRepo shoppingrepo.ShoppingListRepo,
	itemRepo shoppingrepo.ShoppingItemRepo,
	authz Authorizer,
	publisher ActivityPublisher,
) ShoppingListService {
	return &shoppingListService{
		db:        db,
		log:       baseLog.With("service", "ShoppingListService"),
		listRepo:  listRepo,
		itemRepo:  itemRepo,
		authz:     authz,
		publisher: publisher,
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ValidationError("name is required")
	}
	if len(name) > types.MaxNameLength {
		return ValidationError("name exceeds 100 characters")
	}
	return nil
}

func (s *shoppingListService) Create(ctx context.Context, principal *types.User, name string) (*types.ShoppingList, error) {
	if err := validateName(name); err != nil {
		return nil, MapError("invalid_name", err)
	}

	list := &types.ShoppingList{
		ID:              uuid.New(),
		Name:            name,
		LastInteraction: time.Now().UTC(),
	}

	// The creator joins the members set in the same transaction; a list
	// without its creator as member must never be observable.
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.listRepo.Create(ctx, tx, list); err != nil {
			return err
		}
		return s.listRepo.AddMember(ctx, tx, list.ID, principal.ID)
	}); err != nil {
		s.log.Error("Create list failed", "error", err)
		return nil, MapError("create_list_failed", err)
	}

	list.Members = []*types.User{principal}
	s.publish(ctx, ActivityEvent{Event: EventListCreated, ListID: list.ID, ActorID: principal.ID})
	return list, nil
}

// ListForUser is the principal's personal view. The staff override does not
// apply: admins see everything on direct access, not in their own listing.
func (s *shoppingListService) ListForUser(ctx context.Context, principal *types.User) ([]*types.ShoppingList, error) {
	lists, err := s.listRepo.ListForMember(ctx, nil, principal.ID)
	if err != nil {
		return nil, MapError("list_lists_failed", err)
	}
	return lists, nil
}

// resolveAuthorized loads the list and checks access, in that order:
// existence is always decided before authorization so a non-member probing a
// random id cannot distinguish "absent" from "not yours".
func (s *shoppingListService) resolveAuthorized(ctx context.Context, tx *gorm.DB, principal *types.User, listID uuid.UUID, action Action) (*types.ShoppingList, error) {
	list, err := s.listRepo.GetByID(ctx, tx, listID)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanAccessList(principal, list, action) {
		return nil, ForbiddenError("not a member of this shopping list")
	}
	return list, nil
}

func (s *shoppingListService) Get(ctx context.Context, principal *types.User, listID uuid.UUID) (*ShoppingListDetail, error) {
	list, err := s.resolveAuthorized(ctx, nil, principal, listID, ActionRead)
	if err != nil {
		return nil, MapError("get_list_failed", err)
	}

	preview, err := s.itemRepo.UnpurchasedPreview(ctx, nil, list.ID, types.UnpurchasedPreviewLimit)
	if err != nil {
		return nil, MapError("get_list_failed", err)
	}
	return &ShoppingListDetail{ShoppingList: list, UnpurchasedItems: preview}, nil
}

func (s *shoppingListService) UpdateName(ctx context.Context, principal *types.User, listID uuid.UUID, name string) (*types.ShoppingList, error) {
	if err := validateName(name); err != nil {
		return nil, MapError("invalid_name", err)
	}

	list, err := s.resolveAuthorized(ctx, nil, principal, listID, ActionWrite)
	if err != nil {
		return nil, MapError("update_list_failed", err)
	}

	if err := s.listRepo.UpdateName(ctx, nil, list.ID, name); err != nil {
		return nil, MapError("update_list_failed", err)
	}
	list.Name = name
	list.LastInteraction = time.Now().UTC()

	s.publish(ctx, ActivityEvent{Event: EventListUpdated, ListID: list.ID, ActorID: principal.ID})
	return list, nil
}

func (s *shoppingListService) Delete(ctx context.Context, principal *types.User, listID uuid.UUID) error {
	list, err := s.resolveAuthorized(ctx, nil, principal, listID, ActionWrite)
	if err != nil {
		return MapError("delete_list_failed", err)
	}

	// Cascade is all-or-nothing: list, membership rows and items go together.
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.listRepo.Delete(ctx, tx, list.ID)
	}); err != nil {
		s.log.Error("Delete list failed", "list_id", list.ID, "error", err)
		return MapError("delete_list_failed", err)
	}

	s.publish(ctx, ActivityEvent{Event: EventListDeleted, ListID: list.ID, ActorID: principal.ID})
	return nil
}

func (s *shoppingListService) publish(ctx context.Context, event ActivityEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Activity publish failed", "event", event.Event, "list_id", event.ListID, "error", err)
	}
}
