package services

import (
	stderrors "errors"
	"testing"

	"gorm.io/gorm"

	shoppingrepo "github.com/shoplist-app/shoplist-backend/internal/data/repos/shopping"
	"github.com/shoplist-app/shoplist-backend/internal/data/repos/testutil"
	"github.com/shoplist-app/shoplist-backend/internal/pkg/apierr"
)

const (
	testDefaultPageSize = 20
	testMaxPageSize     = 100
)

// Repos and services are built on the test transaction so each test sees only
// its own rows; service-level transactions degrade to savepoints inside it.
func newListService(tb testing.TB, tx *gorm.DB) ShoppingListService {
	tb.Helper()
	log := testutil.Logger(tb)
	listRepo := shoppingrepo.NewShoppingListRepo(tx, log)
	itemRepo := shoppingrepo.NewShoppingItemRepo(tx, log)
	return NewShoppingListService(tx, log, listRepo, itemRepo, NewAuthorizer(log), nil)
}

func newItemService(tb testing.TB, tx *gorm.DB) ShoppingItemService {
	tb.Helper()
	log := testutil.Logger(tb)
	listRepo := shoppingrepo.NewShoppingListRepo(tx, log)
	itemRepo := shoppingrepo.NewShoppingItemRepo(tx, log)
	return NewShoppingItemService(tx, log, listRepo, itemRepo, NewAuthorizer(log), nil,
		testDefaultPageSize, testMaxPageSize)
}

func wantStatus(tb testing.TB, err error, status int) {
	tb.Helper()
	var apiErr *apierr.Error
	if !stderrors.As(err, &apiErr) {
		tb.Fatalf("expected *apierr.Error with status %d, got %T: %v", status, err, err)
	}
	if apiErr.Status != status {
		tb.Fatalf("expected status %d, got %d (%v)", status, apiErr.Status, err)
	}
}
