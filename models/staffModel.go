package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Staff struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	StaffID  string             `bson:"staff_id" json:"staff_id"`
	Name     string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Role     string             `bson:"role" json:"role" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"omitempty,email"`
	Phone    string             `bson:"phone" json:"phone"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	JoinedAt time.Time          `bson:"joined_at" json:"joined_at"`
}

type StaffPatch struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=100"`
	Role  *string `json:"role" validate:"omitempty,min=2"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
	Image *string `json:"image"`
}
