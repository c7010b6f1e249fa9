package models

import (
	"time"

	"github.com/shashiranjanraj/gokart/pkg/gateway"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the closed set of order states. Earlier revisions stored
// free text here; the set is now closed and transitions are checked against
// an explicit table.
type OrderStatus string

const (
	StatusNotProcess OrderStatus = "Not Process"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

var validNext = map[OrderStatus][]OrderStatus{
	StatusNotProcess: {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// Valid reports whether s is a member of the status set.
func (s OrderStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

// Terminal reports whether no further transition leaves s.
func (s OrderStatus) Terminal() bool {
	return len(validNext[s]) == 0
}

// CanTransition reports whether the s → to transition is allowed.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range validNext[s] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderItem is a point-in-time snapshot of a purchased product. Snapshots
// keep the order's line items stable even if the catalog entry is later
// edited or deleted.
type OrderItem struct {
	ProductID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
}

// OrderBuyer carries the buyer reference plus the name denormalised at
// capture time, so order listings don't need a join back to users.
type OrderBuyer struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

// Order is created exactly once, at successful payment capture, and is
// never deleted. Status changes only through the admin workflow.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Products  []OrderItem        `bson:"products" json:"products"`
	Payment   gateway.Result     `bson:"payment" json:"payment"`
	Buyer     OrderBuyer         `bson:"buyer" json:"buyer"`
	Status    OrderStatus        `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
