package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/FahimDeveloper/restaurant-management-server/logger"
	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type OrderService struct {
	orders   OrderStore
	menu     MenuStore
	users    UserStore
	staff    StaffStore
	notifier Notifier
	log      *logger.Logger
	now      func() time.Time
}

func NewOrderService(orders OrderStore, menu MenuStore, users UserStore, staff StaffStore, notifier Notifier, log *logger.Logger) *OrderService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &OrderService{
		orders:   orders,
		menu:     menu,
		users:    users,
		staff:    staff,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// PlaceOrder records an order as submitted. Item ids are trusted; they are
// not checked against the menu here.
func (s *OrderService) PlaceOrder(ctx context.Context, email string, itemIDs []string, date time.Time) (models.Order, error) {
	if email == "" {
		return models.Order{}, invalid("owner email is required")
	}
	if len(itemIDs) == 0 {
		return models.Order{}, invalid("an order needs at least one item")
	}
	if date.IsZero() {
		date = s.now()
	}

	order := models.Order{
		ID:           primitive.NewObjectID(),
		OwnerEmail:   email,
		OrderedItems: itemIDs,
		Date:         date.UTC(),
		Status:       models.OrderPending,
	}
	order.OrderID = order.ID.Hex()

	if _, err := s.orders.Insert(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("insert order: %w", err)
	}

	s.log.Info("place_order", "", "order placed",
		slog.String("order_id", order.OrderID), slog.Int("items", len(itemIDs)))
	s.notifier.Publish(OrderEvent{Type: EventOrderPlaced, OrderID: order.OrderID, Owner: email, Status: order.Status, Order: &order, At: s.now()})
	return order, nil
}

func (s *OrderService) ListOrdersForOwner(ctx context.Context, email string) ([]models.Order, error) {
	orders, err := s.orders.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list orders for %s: %w", email, err)
	}
	return orders, nil
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetOrderDetail resolves the order's item ids against the menu. Ids that no
// longer resolve are left out of the result.
func (s *OrderService) GetOrderDetail(ctx context.Context, orderID string) ([]models.MenuItem, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	items, err := s.menu.FindByIDs(ctx, order.OrderedItems)
	if err != nil {
		return nil, fmt.Errorf("resolve order items: %w", err)
	}
	return items, nil
}

// CancelOrder deletes the order only when email owns it. Someone else's id
// gives a zero-match result.
func (s *OrderService) CancelOrder(ctx context.Context, email, orderID string) (models.WriteResult, error) {
	res, err := s.orders.DeleteOwned(ctx, email, orderID)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("cancel order: %w", err)
	}
	if res.Deleted > 0 {
		s.notifier.Publish(OrderEvent{Type: EventOrderCancelled, OrderID: orderID, Owner: email, Status: models.OrderCancelled, At: s.now()})
	}
	return res, nil
}

func (s *OrderService) SetOrderStatus(ctx context.Context, orderID, status string) (models.WriteResult, error) {
	if !models.ValidOrderStatus(status) {
		return models.WriteResult{}, invalid("unknown order status %q", status)
	}
	res, err := s.orders.SetStatus(ctx, orderID, status)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("set order status: %w", err)
	}
	if res.Matched > 0 {
		s.notifier.Publish(OrderEvent{Type: EventOrderStatus, OrderID: orderID, Status: status, At: s.now()})
	}
	return res, nil
}

func (s *OrderService) ComputeOrderStatistics(ctx context.Context) (models.OrderStatistics, error) {
	lines, err := s.orders.OrderLines(ctx)
	if err != nil {
		return models.OrderStatistics{}, fmt.Errorf("load order lines: %w", err)
	}
	return ComputeStatistics(lines), nil
}

func (s *OrderService) CountUsersAndStaff(ctx context.Context) (models.Counts, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return models.Counts{}, fmt.Errorf("count users: %w", err)
	}
	staff, err := s.staff.Count(ctx)
	if err != nil {
		return models.Counts{}, fmt.Errorf("count staff: %w", err)
	}
	return models.Counts{Users: users, Staff: staff}, nil
}
