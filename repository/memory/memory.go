// Package memory is an in-process document store with the same contracts as
// the MongoDB repository. It backs DB_DRIVER=memory and the tests.
package memory

import (
	"slices"
	"sync"

	"github.com/FahimDeveloper/restaurant-management-server/models"
	"github.com/FahimDeveloper/restaurant-management-server/services"
)

// DB holds every collection behind a single mutex, so each store call is
// atomic the way a single-document MongoDB write is. Slices keep insertion
// order, which stands in for natural order.
type DB struct {
	mu     sync.Mutex
	menu   []models.MenuItem
	users  []models.User
	carts  []models.CartItem
	tables []models.Table
	orders []models.Order
	staff  []models.Staff
}

func New() *DB {
	return &DB{}
}

func (db *DB) Tables() *TableStore { return &TableStore{db: db} }
func (db *DB) Carts() *CartStore   { return &CartStore{db: db} }
func (db *DB) Orders() *OrderStore { return &OrderStore{db: db} }
func (db *DB) Menu() *MenuStore    { return &MenuStore{db: db} }
func (db *DB) Staff() *StaffStore  { return &StaffStore{db: db} }
func (db *DB) Users() *UserStore   { return &UserStore{db: db} }

func cloneTable(t models.Table) models.Table {
	t.BookingList = slices.Clone(t.BookingList)
	if t.BookingList == nil {
		t.BookingList = []models.Booking{}
	}
	return t
}

func cloneOrder(o models.Order) models.Order {
	o.OrderedItems = slices.Clone(o.OrderedItems)
	return o
}

var (
	_ services.TableStore = (*TableStore)(nil)
	_ services.CartStore  = (*CartStore)(nil)
	_ services.OrderStore = (*OrderStore)(nil)
	_ services.MenuStore  = (*MenuStore)(nil)
	_ services.StaffStore = (*StaffStore)(nil)
	_ services.UserStore  = (*UserStore)(nil)
)
