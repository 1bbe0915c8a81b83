package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type MenuService struct {
	menu MenuStore
	now  func() time.Time
}

func NewMenuService(menu MenuStore) *MenuService {
	return &MenuService{menu: menu, now: time.Now}
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, menuID string) (*models.MenuItem, error) {
	item, err := s.menu.FindByID(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("menu item %s: %w", menuID, err)
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if err := validateStruct(item); err != nil {
		return models.MenuItem{}, err
	}
	item.ID = primitive.NewObjectID()
	item.MenuID = item.ID.Hex()
	if item.DateAdded.IsZero() {
		item.DateAdded = s.now().UTC()
	}
	if _, err := s.menu.Insert(ctx, item); err != nil {
		return models.MenuItem{}, fmt.Errorf("insert menu item: %w", err)
	}
	return item, nil
}

// Update applies only the allow-listed fields of patch; ids and dates are
// never writable through it.
func (s *MenuService) Update(ctx context.Context, menuID string, patch models.MenuItemPatch) (models.WriteResult, error) {
	if err := validateStruct(patch); err != nil {
		return models.WriteResult{}, err
	}
	res, err := s.menu.Update(ctx, menuID, patch)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("update menu item: %w", err)
	}
	return res, nil
}

func (s *MenuService) Delete(ctx context.Context, menuID string) (models.WriteResult, error) {
	res, err := s.menu.Delete(ctx, menuID)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("delete menu item: %w", err)
	}
	return res, nil
}

type StaffService struct {
	staff StaffStore
	now   func() time.Time
}

func NewStaffService(staff StaffStore) *StaffService {
	return &StaffService{staff: staff, now: time.Now}
}

func (s *StaffService) List(ctx context.Context) ([]models.Staff, error) {
	staff, err := s.staff.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) Get(ctx context.Context, staffID string) (*models.Staff, error) {
	member, err := s.staff.FindByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("staff %s: %w", staffID, err)
	}
	return member, nil
}

func (s *StaffService) Create(ctx context.Context, member models.Staff) (models.Staff, error) {
	if err := validateStruct(member); err != nil {
		return models.Staff{}, err
	}
	member.ID = primitive.NewObjectID()
	member.StaffID = member.ID.Hex()
	if member.JoinedAt.IsZero() {
		member.JoinedAt = s.now().UTC()
	}
	if _, err := s.staff.Insert(ctx, member); err != nil {
		return models.Staff{}, fmt.Errorf("insert staff: %w", err)
	}
	return member, nil
}

func (s *StaffService) Update(ctx context.Context, staffID string, patch models.StaffPatch) (models.WriteResult, error) {
	if err := validateStruct(patch); err != nil {
		return models.WriteResult{}, err
	}
	res, err := s.staff.Update(ctx, staffID, patch)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("update staff: %w", err)
	}
	return res, nil
}

func (s *StaffService) Delete(ctx context.Context, staffID string) (models.WriteResult, error) {
	res, err := s.staff.Delete(ctx, staffID)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("delete staff: %w", err)
	}
	return res, nil
}
