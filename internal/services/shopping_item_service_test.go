package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/shoplist-app/shoplist-backend/internal/data/repos/testutil"
)

func TestShoppingItemServiceDuplicateGuard(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	listSvc := newListService(t, tx)
	itemSvc := newItemService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "itemsvc-dup@example.com")
	list, err := listSvc.Create(ctx, alice, "Groceries")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}

	if _, err := itemSvc.Create(ctx, alice, list.ID, "Milk", false); err != nil {
		t.Fatalf("Create item: %v", err)
	}

	// A second unpurchased Milk on the same list is rejected and nothing is
	// written.
	_, err = itemSvc.Create(ctx, alice, list.ID, "Milk", false)
	wantStatus(t, err, http.StatusBadRequest)

	page, err := itemSvc.List(ctx, alice, list.ID, 1, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected rejected duplicate to leave count at 1, got %d", page.Total)
	}

	// A purchased copy of the same name is fine.
	if _, err := itemSvc.Create(ctx, alice, list.ID, "Milk", true); err != nil {
		t.Fatalf("purchased duplicate should be allowed: %v", err)
	}

	// And the same name is free on another list.
	other, err := listSvc.Create(ctx, alice, "Other")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}
	if _, err := itemSvc.Create(ctx, alice, other.ID, "Milk", false); err != nil {
		t.Fatalf("same name on another list should be allowed: %v", err)
	}
}

func TestShoppingItemServiceUpdateSemantics(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	listSvc := newListService(t, tx)
	itemSvc := newItemService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "itemsvc-update@example.com")
	list, err := listSvc.Create(ctx, alice, "Groceries")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}

	milk, err := itemSvc.Create(ctx, alice, list.ID, "Milk", false)
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}
	eggs, err := itemSvc.Create(ctx, alice, list.ID, "Eggs", true)
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	// Full replace.
	updated, err := itemSvc.Update(ctx, alice, list.ID, milk.ID, "Oat milk", true)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Oat milk" || !updated.Purchased {
		t.Fatalf("Update: unexpected %+v", updated)
	}

	// Updating an item to its own current name must not self-collide.
	if _, err := itemSvc.Update(ctx, alice, list.ID, milk.ID, "Oat milk", false); err != nil {
		t.Fatalf("Update (same name): %v", err)
	}

	// Renaming onto an existing unpurchased name collides.
	_, err = itemSvc.Update(ctx, alice, list.ID, eggs.ID, "Oat milk", false)
	wantStatus(t, err, http.StatusBadRequest)

	// Empty patch is a no-op that still succeeds.
	same, err := itemSvc.Patch(ctx, alice, list.ID, eggs.ID, ItemPatch{})
	if err != nil {
		t.Fatalf("Patch (empty): %v", err)
	}
	if same.Name != "Eggs" || !same.Purchased {
		t.Fatalf("Patch (empty): expected unchanged item, got %+v", same)
	}

	// Single-field patch leaves the other field alone.
	newName := "Duck eggs"
	patched, err := itemSvc.Patch(ctx, alice, list.ID, eggs.ID, ItemPatch{Name: &newName})
	if err != nil {
		t.Fatalf("Patch (name): %v", err)
	}
	if patched.Name != "Duck eggs" || !patched.Purchased {
		t.Fatalf("Patch (name): unexpected %+v", patched)
	}

	// Flipping a purchased item back can collide just like a create.
	dupName := "Oat milk"
	unpurchased := false
	if _, err := itemSvc.Patch(ctx, alice, list.ID, eggs.ID, ItemPatch{Name: &dupName, Purchased: &unpurchased}); err == nil {
		t.Fatalf("expected duplicate rejection on flip to unpurchased")
	} else {
		wantStatus(t, err, http.StatusBadRequest)
	}
}

func TestShoppingItemServiceScopingAndAccess(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	listSvc := newListService(t, tx)
	itemSvc := newItemService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "itemsvc-scope-alice@example.com")
	mallory := testutil.SeedUser(t, ctx, tx, "itemsvc-scope-mallory@example.com")

	home, err := listSvc.Create(ctx, alice, "Home")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}
	work, err := listSvc.Create(ctx, alice, "Work")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}
	item, err := itemSvc.Create(ctx, alice, home.ID, "Milk", false)
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	// Missing list wins over membership.
	_, err = itemSvc.Get(ctx, mallory, uuid.New(), item.ID)
	wantStatus(t, err, http.StatusNotFound)

	_, err = itemSvc.Get(ctx, mallory, home.ID, item.ID)
	wantStatus(t, err, http.StatusForbidden)

	_, err = itemSvc.Create(ctx, mallory, home.ID, "Spam", false)
	wantStatus(t, err, http.StatusForbidden)

	// A valid item id under the wrong list is absent, even for its owner.
	_, err = itemSvc.Get(ctx, alice, work.ID, item.ID)
	wantStatus(t, err, http.StatusNotFound)

	_, err = itemSvc.Update(ctx, alice, work.ID, item.ID, "Milk", true)
	wantStatus(t, err, http.StatusNotFound)

	err = itemSvc.Delete(ctx, alice, work.ID, item.ID)
	wantStatus(t, err, http.StatusNotFound)
}

func TestShoppingItemServicePagination(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	listSvc := newListService(t, tx)
	itemSvc := newItemService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "itemsvc-page@example.com")
	list, err := listSvc.Create(ctx, alice, "Groceries")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}

	names := []string{"Milk", "Bread", "Butter", "Jam", "Tea"}
	for _, n := range names {
		if _, err := itemSvc.Create(ctx, alice, list.ID, n, false); err != nil {
			t.Fatalf("Create item %q: %v", n, err)
		}
	}

	page, err := itemSvc.List(ctx, alice, list.ID, 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 5 || page.Page != 1 || page.PageSize != 2 || len(page.Items) != 2 {
		t.Fatalf("List: unexpected page %+v", page)
	}
	if page.Items[0].Name != "Milk" || page.Items[1].Name != "Bread" {
		t.Fatalf("List: unexpected order %+v", page.Items)
	}

	last, err := itemSvc.List(ctx, alice, list.ID, 3, 2)
	if err != nil {
		t.Fatalf("List (last): %v", err)
	}
	if len(last.Items) != 1 || last.Items[0].Name != "Tea" {
		t.Fatalf("List (last): unexpected %+v", last.Items)
	}

	// Out-of-range pages are empty, not errors.
	beyond, err := itemSvc.List(ctx, alice, list.ID, 10, 2)
	if err != nil {
		t.Fatalf("List (beyond): %v", err)
	}
	if len(beyond.Items) != 0 {
		t.Fatalf("List (beyond): expected empty page, got %+v", beyond.Items)
	}

	// Page size 0 falls back to the default, oversized requests clamp.
	def, err := itemSvc.List(ctx, alice, list.ID, 0, 0)
	if err != nil {
		t.Fatalf("List (defaults): %v", err)
	}
	if def.Page != 1 || def.PageSize != testDefaultPageSize {
		t.Fatalf("List (defaults): got page=%d size=%d", def.Page, def.PageSize)
	}

	clamped, err := itemSvc.List(ctx, alice, list.ID, 1, testMaxPageSize+50)
	if err != nil {
		t.Fatalf("List (clamp): %v", err)
	}
	if clamped.PageSize != testMaxPageSize {
		t.Fatalf("List (clamp): got size=%d want %d", clamped.PageSize, testMaxPageSize)
	}
}

func TestShoppingItemServiceDeleteAndPurge(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	listSvc := newListService(t, tx)
	itemSvc := newItemService(t, tx)
	ctx := context.Background()

	alice := testutil.SeedUser(t, ctx, tx, "itemsvc-purge@example.com")
	mallory := testutil.SeedUser(t, ctx, tx, "itemsvc-purge-mallory@example.com")

	list, err := listSvc.Create(ctx, alice, "Groceries")
	if err != nil {
		t.Fatalf("Create list: %v", err)
	}
	milk, err := itemSvc.Create(ctx, alice, list.ID, "Milk", false)
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}
	if _, err := itemSvc.Create(ctx, alice, list.ID, "Eggs", true); err != nil {
		t.Fatalf("Create item: %v", err)
	}
	if _, err := itemSvc.Create(ctx, alice, list.ID, "Butter", true); err != nil {
		t.Fatalf("Create item: %v", err)
	}

	_, err = itemSvc.DeletePurchased(ctx, mallory, list.ID)
	wantStatus(t, err, http.StatusForbidden)

	removed, err := itemSvc.DeletePurchased(ctx, alice, list.ID)
	if err != nil {
		t.Fatalf("DeletePurchased: %v", err)
	}
	if removed != 2 {
		t.Fatalf("DeletePurchased: expected 2 removed, got %d", removed)
	}

	removed, err = itemSvc.DeletePurchased(ctx, alice, list.ID)
	if err != nil {
		t.Fatalf("DeletePurchased (repeat): %v", err)
	}
	if removed != 0 {
		t.Fatalf("DeletePurchased (repeat): expected 0, got %d", removed)
	}

	if err := itemSvc.Delete(ctx, alice, list.ID, milk.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	page, err := itemSvc.List(ctx, alice, list.ID, 1, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("expected empty list, got total=%d", page.Total)
	}
}
