package models

import "time"

// Client is a spa client record.
type Client struct {
	ID          string    `bson:"id" json:"id"`
	FullName    string    `bson:"full_name" json:"full_name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	DateOfBirth string    `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"` // "YYYY-MM-DD"
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
