package models

import "time"

// Invoice is a point-of-sale charge record.
type Invoice struct {
	ID        string    `bson:"id" json:"id"`
	ClientID  string    `bson:"client_id" json:"client_id"`
	Amount    int64     `bson:"amount" json:"amount"` // smallest currency unit
	Currency  string    `bson:"currency" json:"currency"`
	Method    string    `bson:"method" json:"method"` // "card" or "cash"
	Status    string    `bson:"status" json:"status"` // "paid", "pending", "failed"
	PaymentID string    `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
