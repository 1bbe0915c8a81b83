package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MenuID    string             `bson:"menu_id" json:"menu_id"`
	Name      string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category  string             `bson:"category" json:"category" validate:"required,min=2,max=50"`
	Price     float64            `bson:"price" json:"price" validate:"gte=0"`
	Image     string             `bson:"image" json:"image"`
	Recipe    string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	DateAdded time.Time          `bson:"date_added" json:"date_added"`
}

// MenuItemPatch carries the fields a caller may change on a menu item.
// Nil fields are left untouched.
type MenuItemPatch struct {
	Name     *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Category *string  `json:"category" validate:"omitempty,min=2,max=50"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	Image    *string  `json:"image"`
	Recipe   *string  `json:"recipe"`
}
