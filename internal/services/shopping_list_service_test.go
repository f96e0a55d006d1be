package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shoplist-app/shoplist-backend/internal/data/repos/testutil"
)

func TestShoppingListServiceCreateAddsCreatorAsMember(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	svc := newListService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "listsvc-create@example.com")

	created, err := svc.Create(ctx, alice, "Groceries")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.IsMember(alice.ID) {
		t.Fatalf("creator must be a member of the new list")
	}

	// The creator can read it back without any extra grant.
	detail, err := svc.Get(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.Name != "Groceries" {
		t.Fatalf("Get: unexpected name %q", detail.Name)
	}
	if len(detail.UnpurchasedItems) != 0 {
		t.Fatalf("Get: expected empty preview, got %+v", detail.UnpurchasedItems)
	}

	lists, err := svc.ListForUser(ctx, alice)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(lists) != 1 || lists[0].ID != created.ID {
		t.Fatalf("ListForUser: expected the created list, got %+v", lists)
	}
}

func TestShoppingListServiceCreateValidatesName(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	svc := newListService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "listsvc-name@example.com")

	_, err := svc.Create(ctx, alice, "   ")
	wantStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(ctx, alice, strings.Repeat("x", 101))
	wantStatus(t, err, http.StatusBadRequest)

	if _, err := svc.Create(ctx, alice, strings.Repeat("x", 100)); err != nil {
		t.Fatalf("100-char name should be accepted: %v", err)
	}
}

func TestShoppingListServiceAccessControl(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	svc := newListService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "listsvc-alice@example.com")
	mallory := testutil.SeedUser(t, ctx, tx, "listsvc-mallory@example.com")
	admin := testutil.SeedStaff(t, ctx, tx, "listsvc-admin@example.com")

	created, err := svc.Create(ctx, alice, "Private")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Missing resolves before forbidden: a stranger probing a random id
	// learns nothing about which ids exist.
	_, err = svc.Get(ctx, mallory, uuid.New())
	wantStatus(t, err, http.StatusNotFound)

	_, err = svc.Get(ctx, mallory, created.ID)
	wantStatus(t, err, http.StatusForbidden)

	_, err = svc.UpdateName(ctx, mallory, created.ID, "Stolen")
	wantStatus(t, err, http.StatusForbidden)

	err = svc.Delete(ctx, mallory, created.ID)
	wantStatus(t, err, http.StatusForbidden)

	// Staff bypass membership on direct access.
	if _, err := svc.Get(ctx, admin, created.ID); err != nil {
		t.Fatalf("staff Get: %v", err)
	}

	// But staff do not see other people's lists in their own listing.
	adminLists, err := svc.ListForUser(ctx, admin)
	if err != nil {
		t.Fatalf("ListForUser (staff): %v", err)
	}
	if len(adminLists) != 0 {
		t.Fatalf("staff listing must only contain their memberships, got %+v", adminLists)
	}
}

func TestShoppingListServiceGetPreview(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	listSvc := newListService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "listsvc-preview@example.com")
	created, err := listSvc.Create(ctx, alice, "Groceries")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	testutil.SeedItem(t, ctx, tx, created.ID, "Milk", false)
	testutil.SeedItem(t, ctx, tx, created.ID, "Eggs", true)
	testutil.SeedItem(t, ctx, tx, created.ID, "Bread", false)
	testutil.SeedItem(t, ctx, tx, created.ID, "Butter", false)
	testutil.SeedItem(t, ctx, tx, created.ID, "Jam", false)

	detail, err := listSvc.Get(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := []string{"Milk", "Bread", "Butter"}
	if len(detail.UnpurchasedItems) != len(want) {
		t.Fatalf("preview: expected %d entries, got %+v", len(want), detail.UnpurchasedItems)
	}
	for i := range want {
		if detail.UnpurchasedItems[i].Name != want[i] {
			t.Fatalf("preview: expected %v, got %+v", want, detail.UnpurchasedItems)
		}
	}
}

func TestShoppingListServiceUpdateAndDelete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	listSvc := newListService(t, tx)
	itemSvc := newItemService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "listsvc-lifecycle@example.com")
	created, err := listSvc.Create(ctx, alice, "Groceries")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	renamed, err := listSvc.UpdateName(ctx, alice, created.ID, "Weekend shop")
	if err != nil {
		t.Fatalf("UpdateName: %v", err)
	}
	if renamed.Name != "Weekend shop" {
		t.Fatalf("UpdateName: got %q", renamed.Name)
	}

	_, err = listSvc.UpdateName(ctx, alice, created.ID, "")
	wantStatus(t, err, http.StatusBadRequest)

	item, err := itemSvc.Create(ctx, alice, created.ID, "Milk", false)
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	if err := listSvc.Delete(ctx, alice, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = listSvc.Get(ctx, alice, created.ID)
	wantStatus(t, err, http.StatusNotFound)

	// Items go with the list.
	_, err = itemSvc.Get(ctx, alice, created.ID, item.ID)
	wantStatus(t, err, http.StatusNotFound)
}
