package models

import "time"

// Article is a news story. AuthorID points at the user who published it;
// the reference is lookup-only, deleting a user never cascades here.
type Article struct {
	ID        int64     `json:"id" db:"id" bson:"id"`
	Title     string    `json:"title" db:"title" bson:"title"`
	Category  string    `json:"category" db:"category" bson:"category"`
	Content   string    `json:"content" db:"content" bson:"content"`
	Excerpt   string    `json:"excerpt" db:"excerpt" bson:"excerpt"`
	ImageURL  string    `json:"image_url" db:"image_url" bson:"image_url"`
	AuthorID  int64     `json:"author_id" db:"author_id" bson:"author_id"`
	Views     int64     `json:"views" db:"views" bson:"views"`
	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" bson:"updated_at"`
}
