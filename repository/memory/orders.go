package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type OrderStore struct{ db *DB }

func (s *OrderStore) Insert(_ context.Context, order models.Order) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, o := range s.db.orders {
		if o.OrderID == order.OrderID {
			return models.WriteResult{}, models.ErrDuplicate
		}
	}
	s.db.orders = append(s.db.orders, cloneOrder(order))
	return models.WriteResult{InsertedID: order.OrderID}, nil
}

func (s *OrderStore) FindByID(_ context.Context, orderID string) (*models.Order, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, o := range s.db.orders {
		if o.OrderID == orderID {
			o = cloneOrder(o)
			return &o, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *OrderStore) ListByOwner(_ context.Context, email string) ([]models.Order, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := []models.Order{}
	for _, o := range s.db.orders {
		if o.OwnerEmail == email {
			out = append(out, cloneOrder(o))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *OrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := make([]models.Order, 0, len(s.db.orders))
	for _, o := range s.db.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (s *OrderStore) DeleteOwned(_ context.Context, email, orderID string) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, o := range s.db.orders {
		if o.OrderID == orderID && o.OwnerEmail == email {
			s.db.orders = slices.Delete(s.db.orders, i, i+1)
			return models.WriteResult{Deleted: 1}, nil
		}
	}
	return models.WriteResult{}, nil
}

func (s *OrderStore) SetStatus(_ context.Context, orderID, status string) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.orders {
		if s.db.orders[i].OrderID == orderID {
			res := models.WriteResult{Matched: 1}
			if s.db.orders[i].Status != status {
				s.db.orders[i].Status = status
				res.Modified = 1
			}
			return res, nil
		}
	}
	return models.WriteResult{}, nil
}

// OrderLines joins every ordered item id to the menu, one row per id. Ids
// without a menu entry produce no row.
func (s *OrderStore) OrderLines(_ context.Context) ([]models.OrderLine, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	byID := make(map[string]models.MenuItem, len(s.db.menu))
	for _, m := range s.db.menu {
		byID[m.MenuID] = m
	}

	var lines []models.OrderLine
	for _, o := range s.db.orders {
		for _, id := range o.OrderedItems {
			item, ok := byID[id]
			if !ok {
				continue
			}
			lines = append(lines, models.OrderLine{OrderID: o.OrderID, OrderDate: o.Date, Item: item})
		}
	}
	return lines, nil
}
