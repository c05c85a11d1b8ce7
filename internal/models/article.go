package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Article struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Subtitle      string             `bson:"subtitle" json:"subtitle"`
	Content       string             `bson:"content" json:"content"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Author        string             `bson:"author" json:"author"` // free text, not a reference
	PublishedDate time.Time          `bson:"publishedDate" json:"publishedDate"`
	LikesCount    int                `bson:"likesCount" json:"likesCount"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
