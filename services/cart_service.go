package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/FahimDeveloper/restaurant-management-server/logger"
	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type CartService struct {
	carts CartStore
	log   *logger.Logger
}

func NewCartService(carts CartStore, log *logger.Logger) *CartService {
	return &CartService{carts: carts, log: log}
}

// CartResult pairs the outcome with the item it concerns, when known.
type CartResult struct {
	Outcome models.CartOutcome `json:"status"`
	Item    *models.CartItem   `json:"item,omitempty"`
	Write   models.WriteResult `json:"result"`
}

// AddItem inserts a cart line unless the owner already has one for the
// same menu item. An existing line is left as is.
func (s *CartService) AddItem(ctx context.Context, item models.CartItem) (CartResult, error) {
	if item.Quantity == 0 {
		item.Quantity = models.MinCartQuantity
	}
	if err := validateStruct(item); err != nil {
		return CartResult{}, err
	}

	existing, err := s.carts.FindByOwnerAndItem(ctx, item.OwnerEmail, item.MenuItemID)
	switch {
	case err == nil:
		return CartResult{Outcome: models.CartAlreadyPresent, Item: existing}, nil
	case !errors.Is(err, models.ErrNotFound):
		return CartResult{}, fmt.Errorf("find cart item: %w", err)
	}

	item.ID = primitive.NewObjectID()
	item.CartID = item.ID.Hex()
	res, err := s.carts.Insert(ctx, item)
	if errors.Is(err, models.ErrDuplicate) {
		s.log.Warn("add_cart_item", "", "concurrent add lost on unique index",
			slog.String("owner_email", item.OwnerEmail), slog.String("menu_item_id", item.MenuItemID))
		return CartResult{Outcome: models.CartAlreadyPresent}, nil
	}
	if err != nil {
		return CartResult{}, fmt.Errorf("insert cart item: %w", err)
	}
	return CartResult{Outcome: models.CartInserted, Item: &item, Write: res}, nil
}

// IncrementQuantity raises the quantity by one up to MaxCartQuantity. current
// is the caller's view and only short-circuits the ceiling; the write itself
// is conditioned on the stored value.
func (s *CartService) IncrementQuantity(ctx context.Context, email, cartID string, current int) (CartResult, error) {
	if current >= models.MaxCartQuantity {
		return CartResult{Outcome: models.CartAtMaximum}, nil
	}
	return s.adjust(ctx, email, cartID, 1, models.CartAtMaximum)
}

// DecrementQuantity lowers the quantity by one down to MinCartQuantity.
func (s *CartService) DecrementQuantity(ctx context.Context, email, cartID string, current int) (CartResult, error) {
	if current != 0 && current <= models.MinCartQuantity {
		return CartResult{Outcome: models.CartAtMinimum}, nil
	}
	return s.adjust(ctx, email, cartID, -1, models.CartAtMinimum)
}

// adjust only touches email's own lines; another owner's cart id is
// reported as not found.
func (s *CartService) adjust(ctx context.Context, email, cartID string, delta int, bound models.CartOutcome) (CartResult, error) {
	res, err := s.carts.AdjustQuantity(ctx, email, cartID, delta)
	if err != nil {
		return CartResult{}, fmt.Errorf("adjust cart quantity: %w", err)
	}
	if res.Matched > 0 {
		return CartResult{Outcome: models.CartUpdated, Write: res}, nil
	}

	// Nothing matched: either the line is gone or it sits on the bound.
	item, err := s.carts.FindByID(ctx, email, cartID)
	if errors.Is(err, models.ErrNotFound) {
		return CartResult{Outcome: models.CartNotFound, Write: res}, nil
	}
	if err != nil {
		return CartResult{}, fmt.Errorf("find cart item: %w", err)
	}
	return CartResult{Outcome: bound, Item: item, Write: res}, nil
}

// RemoveItem deletes one of email's cart lines. Removing a missing or
// foreign line deletes nothing.
func (s *CartService) RemoveItem(ctx context.Context, email, cartID string) (models.WriteResult, error) {
	res, err := s.carts.Delete(ctx, email, cartID)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("delete cart item: %w", err)
	}
	return res, nil
}

func (s *CartService) RemoveAllForOwner(ctx context.Context, email string) (models.WriteResult, error) {
	res, err := s.carts.DeleteByOwner(ctx, email)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("clear cart: %w", err)
	}
	return res, nil
}

func (s *CartService) ListItemsForOwner(ctx context.Context, email string) ([]models.CartItem, error) {
	items, err := s.carts.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}
