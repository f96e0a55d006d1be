package services

import (
	types "github.com/shoplist-app/shoplist-backend/internal/domain"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
)

// Action discriminates read from write access. Today both resolve to the
// same membership rule; the split keeps call sites honest about intent.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Authorizer is the membership authority: a pure decision function over the
// principal and the membership state loaded with the list. Deny is a normal
// outcome, not an error; callers translate it to a forbidden result.
//
// Collection endpoints never consult the authorizer row by row; they filter
// at the query instead (ShoppingListRepo.ListForMember).
type Authorizer interface {
	CanAccessList(principal *types.User, list *types.ShoppingList, action Action) bool
	CanAccessItem(principal *types.User, list *types.ShoppingList, item *types.ShoppingItem, action Action) bool
}

type authorizer struct {
	log *logger.Logger
}

func NewAuthorizer(baseLog *logger.Logger) Authorizer {
	return &authorizer{log: baseLog.With("service", "Authorizer")}
}

func (a *authorizer) CanAccessList(principal *types.User, list *types.ShoppingList, action Action) bool {
	if principal == nil || list == nil {
		return false
	}
	if principal.Staff {
		return true
	}
	return list.IsMember(principal.ID)
}

// CanAccessItem resolves the item through its owning list and applies the
// list rule. An item never carries access rules of its own.
func (a *authorizer) CanAccessItem(principal *types.User, list *types.ShoppingList, item *types.ShoppingItem, action Action) bool {
	if item == nil || list == nil || item.ShoppingListID != list.ID {
		return false
	}
	return a.CanAccessList(principal, list, action)
}
