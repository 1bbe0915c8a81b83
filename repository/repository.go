// Package repository implements the service stores on MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	database "github.com/FahimDeveloper/restaurant-management-server/config"
	"github.com/FahimDeveloper/restaurant-management-server/models"
	"github.com/FahimDeveloper/restaurant-management-server/services"
)

const defaultTimeout = 10 * time.Second

// Repositories bundles one store per collection of db.
type Repositories struct {
	Tables *TableRepository
	Carts  *CartRepository
	Orders *OrderRepository
	Menu   *MenuRepository
	Staff  *StaffRepository
	Users  *UserRepository
}

func New(db *mongo.Database, timeout time.Duration) *Repositories {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := func(name string) collection {
		return collection{coll: database.OpenCollection(db, name), timeout: timeout}
	}
	return &Repositories{
		Tables: &TableRepository{base(database.TableCollection)},
		Carts:  &CartRepository{base(database.CartCollection)},
		Orders: &OrderRepository{collection: base(database.OrderCollection), menuCollection: database.MenuCollection},
		Menu:   &MenuRepository{base(database.MenuCollection)},
		Staff:  &StaffRepository{base(database.StaffCollection)},
		Users:  &UserRepository{base(database.UserCollection)},
	}
}

type collection struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func (c collection) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.timeout)
}

func updateResult(r *mongo.UpdateResult) models.WriteResult {
	if r == nil {
		return models.WriteResult{}
	}
	return models.WriteResult{Matched: r.MatchedCount, Modified: r.ModifiedCount, Upserted: r.UpsertedCount}
}

func deleteResult(r *mongo.DeleteResult) models.WriteResult {
	if r == nil {
		return models.WriteResult{}
	}
	return models.WriteResult{Deleted: r.DeletedCount}
}

func insertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", models.ErrDuplicate, err)
	}
	return err
}

func findError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNotFound
	}
	return err
}

func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor) ([]T, error) {
	defer cursor.Close(ctx)
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var (
	_ services.TableStore = (*TableRepository)(nil)
	_ services.CartStore  = (*CartRepository)(nil)
	_ services.OrderStore = (*OrderRepository)(nil)
	_ services.MenuStore  = (*MenuRepository)(nil)
	_ services.StaffStore = (*StaffRepository)(nil)
	_ services.UserStore  = (*UserRepository)(nil)
)
