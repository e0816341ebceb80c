package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. The bucket holds ordered product
// references; duplicates are allowed and order is preserved.
type User struct {
	ID      primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name    string               `json:"name" bson:"name"`
	Surname string               `json:"surname" bson:"surname"`
	Email   string               `json:"email" bson:"email"`
	// Password holds the bcrypt hash. The legacy API returns the full user
	// record from register/login, hash included, so it is not masked here.
	Password string               `json:"password" bson:"password"`
	Bucket   []primitive.ObjectID `json:"bucket" bson:"bucket"`
}
