package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Author        string             `bson:"author" json:"author"`
	ISBN          string             `bson:"isbn" json:"isbn"`
	Category      string             `bson:"category" json:"category"`
	PublishedYear int                `bson:"published_year" json:"publishedYear"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Available     int                `bson:"available" json:"available"`
	AddedBy       string             `bson:"added_by" json:"addedBy"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

const (
	BookEntity = "book"
)
