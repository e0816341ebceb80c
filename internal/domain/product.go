package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a product in the catalog.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Img         string             `json:"img,omitempty" bson:"img,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	// Field names below keep the legacy schema spelling.
	Length   float64 `json:"lenght,omitempty" bson:"lenght,omitempty"`
	Width    float64 `json:"long,omitempty" bson:"long,omitempty"`
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
}
