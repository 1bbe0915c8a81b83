package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Table owns every booking ever made against it, in append order.
type Table struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TableID     string             `bson:"table_id" json:"table_id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Seats       int                `bson:"seats" json:"seats" validate:"omitempty,min=1"`
	BookingList []Booking          `bson:"booking_list" json:"booking_list"`
}

// Booking lives inside Table.BookingList and has no lifecycle of its own.
type Booking struct {
	BookingID       string    `bson:"booking_id" json:"booking_id"`
	TableID         string    `bson:"table_id" json:"table_id"`
	TableName       string    `bson:"table_name" json:"table_name"`
	ReservationDate string    `bson:"reservation_date" json:"reservation_date" validate:"required,datetime=2006-01-02"`
	Time            string    `bson:"time" json:"time" validate:"required,datetime=15:04"`
	Persons         int       `bson:"persons" json:"persons" validate:"required,min=1,max=20"`
	Phone           string    `bson:"phone" json:"phone" validate:"required"`
	Name            string    `bson:"name" json:"name" validate:"required"`
	OwnerEmail      string    `bson:"owner_email" json:"owner_email"`
	BookingDate     time.Time `bson:"booking_date" json:"booking_date"`
	Status          string    `bson:"status" json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// BookingWithTable is one flattened booking for the management dashboard.
type BookingWithTable struct {
	TableID   string  `bson:"table_id" json:"table_id"`
	TableName string  `bson:"table_name" json:"table_name"`
	Booking   Booking `bson:"booking" json:"booking"`
}

// ValidBookingStatus reports whether s is one of the known booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}
