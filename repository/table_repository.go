package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/FahimDeveloper/restaurant-management-server/models"
)

type TableRepository struct{ collection }

// AvailabilityFilter keeps a table when no booking has the date or no
// booking has the time. $ne against an array field matches only when no
// element equals the value, so the two checks run over the whole list
// independently of each other.
func AvailabilityFilter(date, slot string) bson.D {
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "booking_list.reservation_date", Value: bson.D{{Key: "$ne", Value: date}}}},
		bson.D{{Key: "booking_list.time", Value: bson.D{{Key: "$ne", Value: slot}}}},
	}}}
}

func UserBookingsPipeline(email string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$booking_list"}},
		{{Key: "$match", Value: bson.D{{Key: "booking_list.owner_email", Value: email}}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$booking_list"}}}},
	}
}

func AllBookingsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$booking_list"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "table_id", Value: 1},
			{Key: "table_name", Value: "$name"},
			{Key: "booking", Value: "$booking_list"},
		}}},
	}
}

// BookingStatusUpdate targets the one list element matching both ids;
// $elemMatch makes the positional operator point at that element.
func BookingStatusUpdate(tableID, bookingID, email, status string) (filter, update bson.D) {
	filter = bson.D{
		{Key: "table_id", Value: tableID},
		{Key: "booking_list", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
			{Key: "booking_id", Value: bookingID},
			{Key: "owner_email", Value: email},
		}}}},
	}
	update = bson.D{{Key: "$set", Value: bson.D{{Key: "booking_list.$.status", Value: status}}}}
	return filter, update
}

func (r *TableRepository) ListTables(ctx context.Context) ([]models.Table, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Table](ctx, cursor)
}

func (r *TableRepository) InsertTable(ctx context.Context, table models.Table) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, table); err != nil {
		return models.WriteResult{}, insertError(err)
	}
	return models.WriteResult{InsertedID: table.TableID}, nil
}

// FindTable loads a table without its booking list.
func (r *TableRepository) FindTable(ctx context.Context, tableID string) (*models.Table, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.D{{Key: "booking_list", Value: 0}})
	var table models.Table
	if err := r.coll.FindOne(ctx, bson.D{{Key: "table_id", Value: tableID}}, opts).Decode(&table); err != nil {
		return nil, findError(err)
	}
	return &table, nil
}

func (r *TableRepository) FindAvailable(ctx context.Context, date, slot string) ([]models.Table, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, AvailabilityFilter(date, slot))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Table](ctx, cursor)
}

func (r *TableRepository) AppendBooking(ctx context.Context, tableID string, booking models.Booking) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	filter := bson.D{{Key: "table_id", Value: tableID}}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "booking_list", Value: booking}}}}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

func (r *TableRepository) BookingsByOwner(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, UserBookingsPipeline(email))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Booking](ctx, cursor)
}

func (r *TableRepository) AllBookings(ctx context.Context) ([]models.BookingWithTable, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, AllBookingsPipeline())
	if err != nil {
		return nil, err
	}
	return decodeAll[models.BookingWithTable](ctx, cursor)
}

func (r *TableRepository) SetBookingStatus(ctx context.Context, tableID, bookingID, email, status string) (models.WriteResult, error) {
	ctx, cancel := r.ctx(ctx)
	defer cancel()

	filter, update := BookingStatusUpdate(tableID, bookingID, email, status)
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}
