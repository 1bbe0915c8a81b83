package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/FahimDeveloper/restaurant-management-server/models"
	"github.com/FahimDeveloper/restaurant-management-server/repository/memory"
	"github.com/FahimDeveloper/restaurant-management-server/services"
)

func newCart(t *testing.T) *services.CartService {
	t.Helper()
	return services.NewCartService(memory.New().Carts(), testLogger())
}

func cartItem(owner, menuID string) models.CartItem {
	return models.CartItem{OwnerEmail: owner, MenuItemID: menuID, Name: "Soup", Price: 4.5}
}

func TestAddItemDeduplicates(t *testing.T) {
	ctx := context.Background()
	svc := newCart(t)

	first, err := svc.AddItem(ctx, cartItem("a@x.com", "m1"))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if first.Outcome != models.CartInserted {
		t.Fatalf("Outcome = %q, want inserted", first.Outcome)
	}
	if first.Item.Quantity != 1 {
		t.Errorf("Quantity = %d, want default 1", first.Item.Quantity)
	}

	again := cartItem("a@x.com", "m1")
	again.Quantity = 3
	second, err := svc.AddItem(ctx, again)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if second.Outcome != models.CartAlreadyPresent {
		t.Errorf("Outcome = %q, want already-present", second.Outcome)
	}

	// Another owner may hold the same menu item.
	other, err := svc.AddItem(ctx, cartItem("b@x.com", "m1"))
	if err != nil {
		t.Fatal(err)
	}
	if other.Outcome != models.CartInserted {
		t.Errorf("Outcome = %q, want inserted", other.Outcome)
	}

	items, err := svc.ListItemsForOwner(ctx, "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("items = %+v, want one line with quantity 1", items)
	}
}

func TestAddItemValidation(t *testing.T) {
	tests := []struct {
		name string
		item models.CartItem
	}{
		{"quantity above ceiling", models.CartItem{OwnerEmail: "a@x.com", MenuItemID: "m1", Quantity: 6}},
		{"negative quantity", models.CartItem{OwnerEmail: "a@x.com", MenuItemID: "m1", Quantity: -1}},
		{"missing menu item", models.CartItem{OwnerEmail: "a@x.com"}},
		{"bad email", models.CartItem{OwnerEmail: "nobody", MenuItemID: "m1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newCart(t).AddItem(context.Background(), tt.item)
			if !errors.Is(err, services.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestQuantityBounds(t *testing.T) {
	ctx := context.Background()
	svc := newCart(t)
	added, err := svc.AddItem(ctx, cartItem("a@x.com", "m1"))
	if err != nil {
		t.Fatal(err)
	}
	id := added.Item.CartID

	for q := 1; q < models.MaxCartQuantity; q++ {
		res, err := svc.IncrementQuantity(ctx, "a@x.com", id, q)
		if err != nil {
			t.Fatalf("IncrementQuantity(%d): %v", q, err)
		}
		if res.Outcome != models.CartUpdated {
			t.Fatalf("IncrementQuantity(%d) = %q, want updated", q, res.Outcome)
		}
	}

	tests := []struct {
		name    string
		op      func(context.Context, string, string, int) (services.CartResult, error)
		current int
		want    models.CartOutcome
	}{
		{"increment at ceiling", svc.IncrementQuantity, 5, models.CartAtMaximum},
		{"increment with stale count", svc.IncrementQuantity, 3, models.CartAtMaximum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.op(ctx, "a@x.com", id, tt.current)
			if err != nil {
				t.Fatal(err)
			}
			if res.Outcome != tt.want {
				t.Errorf("Outcome = %q, want %q", res.Outcome, tt.want)
			}
		})
	}

	for q := models.MaxCartQuantity; q > models.MinCartQuantity; q-- {
		if _, err := svc.DecrementQuantity(ctx, "a@x.com", id, q); err != nil {
			t.Fatal(err)
		}
	}
	res, err := svc.DecrementQuantity(ctx, "a@x.com", id, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != models.CartAtMinimum {
		t.Errorf("Outcome = %q, want at-minimum", res.Outcome)
	}
	res, err = svc.DecrementQuantity(ctx, "a@x.com", id, 4)
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != models.CartAtMinimum || res.Item == nil || res.Item.Quantity != 1 {
		t.Errorf("stale decrement = %+v, want at-minimum at quantity 1", res)
	}
}

func TestAdjustMissingOrForeignItem(t *testing.T) {
	ctx := context.Background()
	svc := newCart(t)
	added, err := svc.AddItem(ctx, cartItem("a@x.com", "m1"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		owner  string
		cartID string
		op     func(context.Context, string, string, int) (services.CartResult, error)
	}{
		{"increment unknown id", "a@x.com", "missing", svc.IncrementQuantity},
		{"decrement unknown id", "a@x.com", "missing", svc.DecrementQuantity},
		{"increment another owner's line", "b@x.com", added.Item.CartID, svc.IncrementQuantity},
		{"decrement another owner's line", "b@x.com", added.Item.CartID, svc.DecrementQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.op(ctx, tt.owner, tt.cartID, 2)
			if err != nil {
				t.Fatal(err)
			}
			if res.Outcome != models.CartNotFound || res.Write.Matched != 0 || res.Item != nil {
				t.Errorf("res = %+v, want zero-match not-found", res)
			}
		})
	}

	items, err := svc.ListItemsForOwner(ctx, "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("owner's line changed: %+v", items)
	}
}

func TestRemoveItems(t *testing.T) {
	ctx := context.Background()
	svc := newCart(t)
	first, err := svc.AddItem(ctx, cartItem("a@x.com", "m1"))
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"m2", "m3"} {
		if _, err := svc.AddItem(ctx, cartItem("a@x.com", id)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.AddItem(ctx, cartItem("b@x.com", "m1")); err != nil {
		t.Fatal(err)
	}

	res, err := svc.RemoveItem(ctx, "b@x.com", first.Item.CartID)
	if err != nil || res.Deleted != 0 {
		t.Fatalf("RemoveItem by another owner = %+v, %v", res, err)
	}
	res, err = svc.RemoveItem(ctx, "a@x.com", first.Item.CartID)
	if err != nil || res.Deleted != 1 {
		t.Fatalf("RemoveItem = %+v, %v", res, err)
	}
	res, err = svc.RemoveItem(ctx, "a@x.com", first.Item.CartID)
	if err != nil || res.Deleted != 0 {
		t.Errorf("second RemoveItem = %+v, %v", res, err)
	}

	res, err = svc.RemoveAllForOwner(ctx, "a@x.com")
	if err != nil || res.Deleted != 2 {
		t.Errorf("RemoveAllForOwner = %+v, %v", res, err)
	}
	left, err := svc.ListItemsForOwner(ctx, "b@x.com")
	if err != nil || len(left) != 1 {
		t.Errorf("other owner's cart = %+v, %v", left, err)
	}
}

func TestAddItemConcurrent(t *testing.T) {
	ctx := context.Background()
	svc := newCart(t)

	const callers = 8
	outcomes := make(chan models.CartOutcome, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.AddItem(ctx, cartItem("a@x.com", "m1"))
			if err != nil {
				t.Error(err)
				return
			}
			outcomes <- res.Outcome
		}()
	}
	wg.Wait()
	close(outcomes)

	inserted := 0
	for o := range outcomes {
		if o == models.CartInserted {
			inserted++
		}
	}
	if inserted != 1 {
		t.Errorf("%d callers inserted, want exactly 1", inserted)
	}
}
