package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrderID      string             `bson:"order_id" json:"order_id"`
	OwnerEmail   string             `bson:"owner_email" json:"owner_email"`
	OrderedItems []string           `bson:"ordered_items" json:"ordered_items"`
	Date         time.Time          `bson:"date" json:"date"`
	Status       string             `bson:"status" json:"status"`
}

// OrderLine is one ordered item joined to its catalog entry.
type OrderLine struct {
	OrderID   string    `bson:"order_id" json:"order_id"`
	OrderDate time.Time `bson:"date" json:"date"`
	Item      MenuItem  `bson:"item" json:"item"`
}

type CategoryTotal struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	TotalPrice float64 `json:"total_price"`
}

type BestSeller struct {
	Name       string   `json:"item"`
	Category   string   `json:"category"`
	Count      int      `json:"count"`
	TotalPrice float64  `json:"total_price"`
	Item       MenuItem `json:"full_record"`
}

type OrderStatistics struct {
	CategoryTotals []CategoryTotal `json:"category_totals"`
	BestSeller     *BestSeller     `json:"best_seller"`
}

// ValidOrderStatus reports whether s is one of the known order states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
