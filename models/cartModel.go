package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bounds for CartItem.Quantity, both inclusive.
const (
	MinCartQuantity = 1
	MaxCartQuantity = 5
)

type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CartID     string             `bson:"cart_id" json:"cart_id"`
	OwnerEmail string             `bson:"owner_email" json:"owner_email" validate:"required,email"`
	MenuItemID string             `bson:"menu_item_id" json:"menu_item_id" validate:"required"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price" validate:"gte=0"`
	Quantity   int                `bson:"quantity" json:"quantity" validate:"omitempty,min=1,max=5"`
}

// CartOutcome is reported in the response payload rather than as a failure.
type CartOutcome string

const (
	CartInserted       CartOutcome = "inserted"
	CartAlreadyPresent CartOutcome = "already-present"
	CartUpdated        CartOutcome = "updated"
	CartAtMaximum      CartOutcome = "at-maximum"
	CartAtMinimum      CartOutcome = "at-minimum"
	CartNotFound       CartOutcome = "not-found"
)
