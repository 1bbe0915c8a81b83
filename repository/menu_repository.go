package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type MenuRepository struct{ collection }

// MenuPatchSet lists the $set fields for patch. Only the allow-listed menu
// fields can appear; the result is empty when patch changes nothing.
func MenuPatchSet(patch models.MenuItemPatch) bson.D {
	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *patch.Category})
	}
	if patch.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *patch.Price})
	}
	if patch.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *patch.Image})
	}
	if patch.Recipe != nil {
		set = append(set, bson.E{Key: "recipe", Value: *patch.Recipe})
	}
	return set
}

func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date_added", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.MenuItem](ctx, cursor)
}

func (r *MenuRepository) FindByID(ctx context.Context, menuID string) (*models.MenuItem, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var item models.MenuItem
	if err := r.coll.FindOne(ctx, bson.D{{Key: "menu_id", Value: menuID}}).Decode(&item); err != nil {
		return nil, findError(err)
	}
	return &item, nil
}

func (r *MenuRepository) FindByIDs(ctx context.Context, menuIDs []string) ([]models.MenuItem, error) {
	if len(menuIDs) == 0 {
		return []models.MenuItem{}, nil
	}
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	filter := bson.D{{Key: "menu_id", Value: bson.D{{Key: "$in", Value: menuIDs}}}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.MenuItem](ctx, cursor)
}

func (r *MenuRepository) Insert(ctx context.Context, item models.MenuItem) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return models.WriteResult{}, insertError(err)
	}
	return models.WriteResult{InsertedID: item.MenuID}, nil
}

func (r *MenuRepository) Update(ctx context.Context, menuID string, patch models.MenuItemPatch) (models.WriteResult, error) {
	return patchOne(ctx, r.collection, bson.D{{Key: "menu_id", Value: menuID}}, MenuPatchSet(patch))
}

func (r *MenuRepository) Delete(ctx context.Context, menuID string) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "menu_id", Value: menuID}})
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

// patchOne applies set with $set. An empty set only reports whether the
// document exists, since MongoDB rejects an empty $set.
func patchOne(ctx context.Context, c collection, filter, set bson.D) (models.WriteResult, error) {
	ctx, cancel := c.ctx(ctx)
	defer cancel()

	if len(set) == 0 {
		n, err := c.coll.CountDocuments(ctx, filter)
		if err != nil {
			return models.WriteResult{}, err
		}
		return models.WriteResult{Matched: n}, nil
	}

	res, err := c.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}
