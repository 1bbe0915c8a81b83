package services

import (
	"context"
	"time"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

// The store interfaces below are the only view the services have of the
// document database. repository implements them on MongoDB and
// repository/memory in process.

type TableStore interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	InsertTable(ctx context.Context, table models.Table) (models.WriteResult, error)
	FindTable(ctx context.Context, tableID string) (*models.Table, error)
	// FindAvailable returns tables where no booking has the date or no
	// booking has the time, each tested over the whole booking list.
	FindAvailable(ctx context.Context, date, slot string) ([]models.Table, error)
	AppendBooking(ctx context.Context, tableID string, booking models.Booking) (models.WriteResult, error)
	BookingsByOwner(ctx context.Context, email string) ([]models.Booking, error)
	AllBookings(ctx context.Context) ([]models.BookingWithTable, error)
	// SetBookingStatus updates the single booking matching both ids in one
	// atomic write on the table document.
	SetBookingStatus(ctx context.Context, tableID, bookingID, email, status string) (models.WriteResult, error)
}

type CartStore interface {
	FindByOwnerAndItem(ctx context.Context, email, menuItemID string) (*models.CartItem, error)
	// FindByID, AdjustQuantity and Delete only see lines owned by email.
	FindByID(ctx context.Context, email, cartID string) (*models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (models.WriteResult, error)
	// AdjustQuantity adds delta to quantity in one conditional write that
	// only matches when the result stays within [MinCartQuantity,
	// MaxCartQuantity].
	AdjustQuantity(ctx context.Context, email, cartID string, delta int) (models.WriteResult, error)
	Delete(ctx context.Context, email, cartID string) (models.WriteResult, error)
	DeleteByOwner(ctx context.Context, email string) (models.WriteResult, error)
	ListByOwner(ctx context.Context, email string) ([]models.CartItem, error)
}

type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (models.WriteResult, error)
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	// ListByOwner is sorted by date, newest first.
	ListByOwner(ctx context.Context, email string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	DeleteOwned(ctx context.Context, email, orderID string) (models.WriteResult, error)
	SetStatus(ctx context.Context, orderID, status string) (models.WriteResult, error)
	// OrderLines yields one row per ordered item id that still resolves
	// against the menu.
	OrderLines(ctx context.Context) ([]models.OrderLine, error)
}

type MenuStore interface {
	// List is sorted by date added, newest first.
	List(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, menuID string) (*models.MenuItem, error)
	FindByIDs(ctx context.Context, menuIDs []string) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (models.WriteResult, error)
	Update(ctx context.Context, menuID string, patch models.MenuItemPatch) (models.WriteResult, error)
	Delete(ctx context.Context, menuID string) (models.WriteResult, error)
}

type StaffStore interface {
	List(ctx context.Context) ([]models.Staff, error)
	FindByID(ctx context.Context, staffID string) (*models.Staff, error)
	Insert(ctx context.Context, staff models.Staff) (models.WriteResult, error)
	Update(ctx context.Context, staffID string, patch models.StaffPatch) (models.WriteResult, error)
	Delete(ctx context.Context, staffID string) (models.WriteResult, error)
	Count(ctx context.Context) (int64, error)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (models.WriteResult, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, email, role string) (models.WriteResult, error)
	Count(ctx context.Context) (int64, error)
}

// Notifier receives order events. The websocket hub implements it.
type Notifier interface {
	Publish(event OrderEvent)
}

type OrderEvent struct {
	Type    string        `json:"type"`
	OrderID string        `json:"order_id"`
	Owner   string        `json:"owner_email,omitempty"`
	Status  string        `json:"status,omitempty"`
	Order   *models.Order `json:"order,omitempty"`
	At      time.Time     `json:"at"`
}

const (
	EventOrderPlaced    = "order.placed"
	EventOrderStatus    = "order.status"
	EventOrderCancelled = "order.cancelled"
)

type nopNotifier struct{}

func (nopNotifier) Publish(OrderEvent) {}
