package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type CartRepository struct{ collection }

// ownedItem matches one cart line of one owner.
func ownedItem(email, cartID string) bson.D {
	return bson.D{{Key: "cart_id", Value: cartID}, {Key: "owner_email", Value: email}}
}

// QuantityUpdate builds the conditional $inc for AdjustQuantity. The filter
// only matches while quantity+delta stays inside the cart bounds, so the
// bound check and the write are one atomic operation.
func QuantityUpdate(email, cartID string, delta int) (filter, update bson.D) {
	bound := bson.D{{Key: "$lte", Value: models.MaxCartQuantity - delta}}
	if delta < 0 {
		bound = bson.D{{Key: "$gte", Value: models.MinCartQuantity - delta}}
	}
	filter = append(ownedItem(email, cartID), bson.E{Key: "quantity", Value: bound})
	update = bson.D{{Key: "$inc", Value: bson.D{{Key: "quantity", Value: delta}}}}
	return filter, update
}

func (r *CartRepository) FindByOwnerAndItem(ctx context.Context, email, menuItemID string) (*models.CartItem, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var item models.CartItem
	filter := bson.D{{Key: "owner_email", Value: email}, {Key: "menu_item_id", Value: menuItemID}}
	if err := r.coll.FindOne(ctx, filter).Decode(&item); err != nil {
		return nil, findError(err)
	}
	return &item, nil
}

func (r *CartRepository) FindByID(ctx context.Context, email, cartID string) (*models.CartItem, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var item models.CartItem
	if err := r.coll.FindOne(ctx, ownedItem(email, cartID)).Decode(&item); err != nil {
		return nil, findError(err)
	}
	return &item, nil
}

func (r *CartRepository) Insert(ctx context.Context, item models.CartItem) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return models.WriteResult{}, insertError(err)
	}
	return models.WriteResult{InsertedID: item.CartID}, nil
}

func (r *CartRepository) AdjustQuantity(ctx context.Context, email, cartID string, delta int) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	filter, update := QuantityUpdate(email, cartID, delta)
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

func (r *CartRepository) Delete(ctx context.Context, email, cartID string) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, ownedItem(email, cartID))
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

func (r *CartRepository) DeleteByOwner(ctx context.Context, email string) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "owner_email", Value: email}})
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

func (r *CartRepository) ListByOwner(ctx context.Context, email string) ([]models.CartItem, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "owner_email", Value: email}})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.CartItem](ctx, cursor)
}
