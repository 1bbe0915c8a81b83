package memory

import (
	"context"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type CartStore struct{ db *DB }

func (s *CartStore) FindByOwnerAndItem(_ context.Context, email, menuItemID string) (*models.CartItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, c := range s.db.carts {
		if c.OwnerEmail == email && c.MenuItemID == menuItemID {
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *CartStore) FindByID(_ context.Context, email, cartID string) (*models.CartItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, c := range s.db.carts {
		if c.CartID == cartID && c.OwnerEmail == email {
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

// Insert enforces the same unique keys as the MongoDB indexes:
// (owner_email, menu_item_id) and cart_id.
func (s *CartStore) Insert(_ context.Context, item models.CartItem) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, c := range s.db.carts {
		if c.CartID == item.CartID || (c.OwnerEmail == item.OwnerEmail && c.MenuItemID == item.MenuItemID) {
			return models.WriteResult{}, models.ErrDuplicate
		}
	}
	s.db.carts = append(s.db.carts, item)
	return models.WriteResult{InsertedID: item.CartID}, nil
}

func (s *CartStore) AdjustQuantity(_ context.Context, email, cartID string, delta int) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.carts {
		if s.db.carts[i].CartID != cartID || s.db.carts[i].OwnerEmail != email {
			continue
		}
		next := s.db.carts[i].Quantity + delta
		if next < models.MinCartQuantity || next > models.MaxCartQuantity {
			return models.WriteResult{}, nil
		}
		s.db.carts[i].Quantity = next
		return models.WriteResult{Matched: 1, Modified: 1}, nil
	}
	return models.WriteResult{}, nil
}

func (s *CartStore) Delete(_ context.Context, email, cartID string) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, c := range s.db.carts {
		if c.CartID == cartID && c.OwnerEmail == email {
			s.db.carts = append(s.db.carts[:i], s.db.carts[i+1:]...)
			return models.WriteResult{Deleted: 1}, nil
		}
	}
	return models.WriteResult{}, nil
}

func (s *CartStore) DeleteByOwner(_ context.Context, email string) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	kept := s.db.carts[:0]
	var deleted int64
	for _, c := range s.db.carts {
		if c.OwnerEmail == email {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	s.db.carts = kept
	return models.WriteResult{Deleted: deleted}, nil
}

func (s *CartStore) ListByOwner(_ context.Context, email string) ([]models.CartItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := []models.CartItem{}
	for _, c := range s.db.carts {
		if c.OwnerEmail == email {
			out = append(out, c)
		}
	}
	return out, nil
}
