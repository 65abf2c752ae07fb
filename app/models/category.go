package models

import "time"

type Category struct {
	Code      string    `bson:"_id" json:"code"`
	Name      string    `bson:"name" json:"name"`
	Slug      string    `bson:"slug" json:"slug"`
	Sections  []Section `bson:"sections" json:"sections"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type Section struct {
	Label string `bson:"label" json:"label"`
	Slug  string `bson:"slug" json:"slug"`
}
