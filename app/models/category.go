package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products. Slug is derived deterministically from Name and
// regenerated whenever the name changes, so previously shared links can go
// stale — that is accepted behaviour.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `bson:"name" json:"name"`
	Slug string             `bson:"slug" json:"slug"`
}
