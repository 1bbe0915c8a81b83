package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type MenuStore struct{ db *DB }

func (s *MenuStore) List(_ context.Context) ([]models.MenuItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := slices.Clone(s.db.menu)
	if out == nil {
		out = []models.MenuItem{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateAdded.After(out[j].DateAdded) })
	return out, nil
}

func (s *MenuStore) FindByID(_ context.Context, menuID string) (*models.MenuItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, m := range s.db.menu {
		if m.MenuID == menuID {
			return &m, nil
		}
	}
	return nil, models.ErrNotFound
}

// FindByIDs behaves like {menu_id: {$in: ids}}: each matching item once, in
// collection order.
func (s *MenuStore) FindByIDs(_ context.Context, menuIDs []string) ([]models.MenuItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := []models.MenuItem{}
	for _, m := range s.db.menu {
		if slices.Contains(menuIDs, m.MenuID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MenuStore) Insert(_ context.Context, item models.MenuItem) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, m := range s.db.menu {
		if m.MenuID == item.MenuID {
			return models.WriteResult{}, models.ErrDuplicate
		}
	}
	s.db.menu = append(s.db.menu, item)
	return models.WriteResult{InsertedID: item.MenuID}, nil
}

func (s *MenuStore) Update(_ context.Context, menuID string, patch models.MenuItemPatch) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.menu {
		if s.db.menu[i].MenuID != menuID {
			continue
		}
		m := &s.db.menu[i]
		before := *m
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Category != nil {
			m.Category = *patch.Category
		}
		if patch.Price != nil {
			m.Price = *patch.Price
		}
		if patch.Image != nil {
			m.Image = *patch.Image
		}
		if patch.Recipe != nil {
			m.Recipe = *patch.Recipe
		}
		res := models.WriteResult{Matched: 1}
		if *m != before {
			res.Modified = 1
		}
		return res, nil
	}
	return models.WriteResult{}, nil
}

func (s *MenuStore) Delete(_ context.Context, menuID string) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, m := range s.db.menu {
		if m.MenuID == menuID {
			s.db.menu = slices.Delete(s.db.menu, i, i+1)
			return models.WriteResult{Deleted: 1}, nil
		}
	}
	return models.WriteResult{}, nil
}

type StaffStore struct{ db *DB }

func (s *StaffStore) List(_ context.Context) ([]models.Staff, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := slices.Clone(s.db.staff)
	if out == nil {
		out = []models.Staff{}
	}
	return out, nil
}

func (s *StaffStore) FindByID(_ context.Context, staffID string) (*models.Staff, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, m := range s.db.staff {
		if m.StaffID == staffID {
			return &m, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *StaffStore) Insert(_ context.Context, member models.Staff) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, m := range s.db.staff {
		if m.StaffID == member.StaffID {
			return models.WriteResult{}, models.ErrDuplicate
		}
	}
	s.db.staff = append(s.db.staff, member)
	return models.WriteResult{InsertedID: member.StaffID}, nil
}

func (s *StaffStore) Update(_ context.Context, staffID string, patch models.StaffPatch) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.staff {
		if s.db.staff[i].StaffID != staffID {
			continue
		}
		m := &s.db.staff[i]
		before := *m
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Role != nil {
			m.Role = *patch.Role
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if patch.Phone != nil {
			m.Phone = *patch.Phone
		}
		if patch.Image != nil {
			m.Image = *patch.Image
		}
		res := models.WriteResult{Matched: 1}
		if *m != before {
			res.Modified = 1
		}
		return res, nil
	}
	return models.WriteResult{}, nil
}

func (s *StaffStore) Delete(_ context.Context, staffID string) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, m := range s.db.staff {
		if m.StaffID == staffID {
			s.db.staff = slices.Delete(s.db.staff, i, i+1)
			return models.WriteResult{Deleted: 1}, nil
		}
	}
	return models.WriteResult{}, nil
}

func (s *StaffStore) Count(_ context.Context) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return int64(len(s.db.staff)), nil
}

type UserStore struct{ db *DB }

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, u := range s.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

// Insert enforces the unique email index.
func (s *UserStore) Insert(_ context.Context, user models.User) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, u := range s.db.users {
		if u.Email == user.Email {
			return models.WriteResult{}, models.ErrDuplicate
		}
	}
	s.db.users = append(s.db.users, user)
	return models.WriteResult{InsertedID: user.ID.Hex()}, nil
}

func (s *UserStore) List(_ context.Context) ([]models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	out := slices.Clone(s.db.users)
	if out == nil {
		out = []models.User{}
	}
	return out, nil
}

func (s *UserStore) SetRole(_ context.Context, email, role string) (models.WriteResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.users {
		if s.db.users[i].Email == email {
			res := models.WriteResult{Matched: 1}
			if s.db.users[i].Role != role {
				s.db.users[i].Role = role
				res.Modified = 1
			}
			return res, nil
		}
	}
	return models.WriteResult{}, nil
}

func (s *UserStore) Count(_ context.Context) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return int64(len(s.db.users)), nil
}
