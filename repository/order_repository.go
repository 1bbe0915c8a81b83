package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type OrderRepository struct {
	collection
	menuCollection string
}

// OrderLinesPipeline emits one row per ordered item id joined to its menu
// document. The second $unwind drops ids that no longer resolve.
func OrderLinesPipeline(menuCollection string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$ordered_items"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: menuCollection},
			{Key: "localField", Value: "ordered_items"},
			{Key: "foreignField", Value: "menu_id"},
			{Key: "as", Value: "item"},
		}}},
		{{Key: "$unwind", Value: "$item"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "order_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "item", Value: 1},
		}}},
	}
}

func (r *OrderRepository) Insert(ctx context.Context, order models.Order) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return models.WriteResult{}, insertError(err)
	}
	return models.WriteResult{InsertedID: order.OrderID}, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.D{{Key: "order_id", Value: orderID}}).Decode(&order); err != nil {
		return nil, findError(err)
	}
	return &order, nil
}

func (r *OrderRepository) ListByOwner(ctx context.Context, email string) ([]models.Order, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "owner_email", Value: email}}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Order](ctx, cursor)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Order](ctx, cursor)
}

func (r *OrderRepository) DeleteOwned(ctx context.Context, email, orderID string) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	filter := bson.D{{Key: "order_id", Value: orderID}, {Key: "owner_email", Value: email}}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, orderID, status string) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "order_id", Value: orderID}}, update)
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

func (r *OrderRepository) OrderLines(ctx context.Context) ([]models.OrderLine, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, OrderLinesPipeline(r.menuCollection))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.OrderLine](ctx, cursor)
}
