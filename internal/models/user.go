package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"fullName" json:"fullName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"` // Hide from JSON responses
	Phone     string             `bson:"phone" json:"phone"`          // Optional, can be empty
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
