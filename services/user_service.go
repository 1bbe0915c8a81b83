package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

const (
	UserInserted       = "inserted"
	UserAlreadyPresent = "already-present"
)

type UserService struct {
	users UserStore
	now   func() time.Time
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users, now: time.Now}
}

// CreateUser stores user unless the email is taken. The second call for an
// email reports UserAlreadyPresent and changes nothing.
func (s *UserService) CreateUser(ctx context.Context, user models.User) (string, error) {
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	if err := validateStruct(user); err != nil {
		return "", err
	}

	_, err := s.users.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return UserAlreadyPresent, nil
	case !errors.Is(err, models.ErrNotFound):
		return "", fmt.Errorf("find user: %w", err)
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = s.now().UTC()
	_, err = s.users.Insert(ctx, user)
	if errors.Is(err, models.ErrDuplicate) {
		return UserAlreadyPresent, nil
	}
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return UserInserted, nil
}

func (s *UserService) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("user %s: %w", email, err)
	}
	return user.Role, nil
}

// IsAdmin reports whether the stored role for email is admin. Unknown users
// are not admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.GetRole(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) SetRole(ctx context.Context, email, role string) (models.WriteResult, error) {
	switch role {
	case models.RoleCustomer, models.RoleAdmin, models.RoleStaff:
	default:
		return models.WriteResult{}, invalid("unknown role %q", role)
	}
	res, err := s.users.SetRole(ctx, email, role)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("set role: %w", err)
	}
	return res, nil
}
