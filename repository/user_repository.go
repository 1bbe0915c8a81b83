package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type UserRepository struct{ collection }

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user); err != nil {
		return nil, findError(err)
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user models.User) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return models.WriteResult{}, insertError(err)
	}
	return models.WriteResult{InsertedID: user.ID.Hex()}, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.User](ctx, cursor)
}

func (r *UserRepository) SetRole(ctx context.Context, email, role string) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update)
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()
	return r.coll.EstimatedDocumentCount(ctx)
}
