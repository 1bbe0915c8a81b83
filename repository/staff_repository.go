package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type StaffRepository struct{ collection }

func StaffPatchSet(patch models.StaffPatch) bson.D {
	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Role != nil {
		set = append(set, bson.E{Key: "role", Value: *patch.Role})
	}
	if patch.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *patch.Email})
	}
	if patch.Phone != nil {
		set = append(set, bson.E{Key: "phone", Value: *patch.Phone})
	}
	if patch.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *patch.Image})
	}
	return set
}

func (r *StaffRepository) List(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Staff](ctx, cursor)
}

func (r *StaffRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var member models.Staff
	if err := r.coll.FindOne(ctx, bson.D{{Key: "staff_id", Value: staffID}}).Decode(&member); err != nil {
		return nil, findError(err)
	}
	return &member, nil
}

func (r *StaffRepository) Insert(ctx context.Context, member models.Staff) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		return models.WriteResult{}, insertError(err)
	}
	return models.WriteResult{InsertedID: member.StaffID}, nil
}

func (r *StaffRepository) Update(ctx context.Context, staffID string, patch models.StaffPatch) (models.WriteResult, error) {
	return patchOne(ctx, r.collection, bson.D{{Key: "staff_id", Value: staffID}}, StaffPatchSet(patch))
}

func (r *StaffRepository) Delete(ctx context.Context, staffID string) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "staff_id", Value: staffID}})
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()
	return r.coll.EstimatedDocumentCount(ctx)
}
