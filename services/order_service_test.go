package services_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/FahimDeveloper/restaurant-management-server/models"
	"github.com/FahimDeveloper/restaurant-management-server/repository/memory"
	"github.com/FahimDeveloper/restaurant-management-server/services"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []services.OrderEvent
}

func (n *recordingNotifier) Publish(event services.OrderEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

func newOrders(t *testing.T) (*services.OrderService, *memory.DB, *recordingNotifier) {
	t.Helper()
	db := memory.New()
	events := &recordingNotifier{}
	svc := services.NewOrderService(db.Orders(), db.Menu(), db.Users(), db.Staff(), events, testLogger())
	return svc, db, events
}

func seedMenu(t *testing.T, db *memory.DB, items ...models.MenuItem) {
	t.Helper()
	for _, item := range items {
		if _, err := db.Menu().Insert(context.Background(), item); err != nil {
			t.Fatalf("seed menu: %v", err)
		}
	}
}

func TestComputeOrderStatistics(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newOrders(t)
	seedMenu(t, db,
		models.MenuItem{MenuID: "A", Name: "Burger", Category: "Mains", Price: 10},
		models.MenuItem{MenuID: "B", Name: "Cola", Category: "Drinks", Price: 5},
	)

	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if _, err := svc.PlaceOrder(ctx, "a@x.com", []string{"A"}, day); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.PlaceOrder(ctx, "b@x.com", []string{"A", "B", "gone"}, day.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.ComputeOrderStatistics(ctx)
	if err != nil {
		t.Fatalf("ComputeOrderStatistics: %v", err)
	}

	want := []models.CategoryTotal{
		{Category: "Mains", Count: 2, TotalPrice: 20},
		{Category: "Drinks", Count: 1, TotalPrice: 5},
	}
	if len(stats.CategoryTotals) != len(want) {
		t.Fatalf("CategoryTotals = %+v", stats.CategoryTotals)
	}
	for i := range want {
		if stats.CategoryTotals[i] != want[i] {
			t.Errorf("CategoryTotals[%d] = %+v, want %+v", i, stats.CategoryTotals[i], want[i])
		}
	}

	best := stats.BestSeller
	if best == nil {
		t.Fatal("BestSeller is nil")
	}
	if best.Name != "Burger" || best.Count != 2 || best.TotalPrice != 20 || best.Item.MenuID != "A" {
		t.Errorf("BestSeller = %+v", best)
	}
}

func TestOrderStatisticsEmpty(t *testing.T) {
	svc, _, _ := newOrders(t)
	stats, err := svc.ComputeOrderStatistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.CategoryTotals) != 0 || stats.BestSeller != nil {
		t.Errorf("stats = %+v, want empty", stats)
	}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	svc, _, events := newOrders(t)

	if _, err := svc.PlaceOrder(ctx, "a@x.com", nil, time.Time{}); !errors.Is(err, services.ErrInvalidInput) {
		t.Errorf("empty order err = %v, want ErrInvalidInput", err)
	}

	older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	first, err := svc.PlaceOrder(ctx, "a@x.com", []string{"A"}, older)
	if err != nil {
		t.Fatal(err)
	}
	if first.Status != models.OrderPending {
		t.Errorf("Status = %q, want pending", first.Status)
	}
	second, err := svc.PlaceOrder(ctx, "a@x.com", []string{"B"}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if second.Date.IsZero() {
		t.Error("Date was not defaulted")
	}

	orders, err := svc.ListOrdersForOwner(ctx, "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 2 || orders[0].OrderID != second.OrderID {
		t.Errorf("orders not newest first: %+v", orders)
	}

	if got := events.types(); len(got) != 2 || got[0] != services.EventOrderPlaced {
		t.Errorf("events = %v", got)
	}
}

func TestCancelOrderOwnership(t *testing.T) {
	ctx := context.Background()
	svc, _, events := newOrders(t)
	order, err := svc.PlaceOrder(ctx, "a@x.com", []string{"A"}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.CancelOrder(ctx, "b@x.com", order.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Deleted != 0 {
		t.Errorf("foreign cancel deleted %d orders", res.Deleted)
	}

	res, err = svc.CancelOrder(ctx, "a@x.com", order.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Deleted != 1 {
		t.Errorf("Deleted = %d, want 1", res.Deleted)
	}

	want := []string{services.EventOrderPlaced, services.EventOrderCancelled}
	got := events.types()
	if len(got) != len(want) || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestGetOrderDetail(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newOrders(t)
	seedMenu(t, db, models.MenuItem{MenuID: "A", Name: "Burger", Category: "Mains", Price: 10})

	if _, err := svc.GetOrderDetail(ctx, "missing"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	order, err := svc.PlaceOrder(ctx, "a@x.com", []string{"A", "gone"}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	items, err := svc.GetOrderDetail(ctx, order.OrderID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].MenuID != "A" {
		t.Errorf("items = %+v, want only the resolvable item", items)
	}
}

func TestSetOrderStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, events := newOrders(t)
	order, err := svc.PlaceOrder(ctx, "a@x.com", []string{"A"}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SetOrderStatus(ctx, order.OrderID, "eaten"); !errors.Is(err, services.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	res, err := svc.SetOrderStatus(ctx, "missing", models.OrderPreparing)
	if err != nil || res.Matched != 0 {
		t.Errorf("missing order = %+v, %v", res, err)
	}
	res, err = svc.SetOrderStatus(ctx, order.OrderID, models.OrderPreparing)
	if err != nil || res.Modified != 1 {
		t.Errorf("SetOrderStatus = %+v, %v", res, err)
	}

	if got := events.types(); len(got) != 2 || got[1] != services.EventOrderStatus {
		t.Errorf("events = %v", got)
	}
}

func TestCountUsersAndStaff(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newOrders(t)
	users := services.NewUserService(db.Users())
	staff := services.NewStaffService(db.Staff())

	for _, email := range []string{"a@x.com", "b@x.com"} {
		if _, err := users.CreateUser(ctx, models.User{Email: email}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := staff.Create(ctx, models.Staff{Name: "Chef Ana", Role: "chef"}); err != nil {
		t.Fatal(err)
	}

	counts, err := svc.CountUsersAndStaff(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts.Users != 2 || counts.Staff != 1 {
		t.Errorf("counts = %+v, want 2 users and 1 staff", counts)
	}
}

func TestExportStatistics(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newOrders(t)
	seedMenu(t, db, models.MenuItem{MenuID: "A", Name: "Burger", Category: "Mains", Price: 10})
	if _, err := svc.PlaceOrder(ctx, "a@x.com", []string{"A", "A"}, time.Time{}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := svc.ExportStatistics(ctx, &buf); err != nil {
		t.Fatalf("ExportStatistics: %v", err)
	}

	file, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	categories, ok := file.Sheet["Categories"]
	if !ok {
		t.Fatal("Categories sheet missing")
	}
	if len(categories.Rows) != 2 {
		t.Fatalf("Categories has %d rows, want header and one category", len(categories.Rows))
	}
	if got := categories.Rows[1].Cells[0].String(); got != "Mains" {
		t.Errorf("category = %q, want Mains", got)
	}
	best, ok := file.Sheet["Best Seller"]
	if !ok {
		t.Fatal("Best Seller sheet missing")
	}
	if got := best.Rows[1].Cells[0].String(); got != "Burger" {
		t.Errorf("best seller = %q, want Burger", got)
	}
}
