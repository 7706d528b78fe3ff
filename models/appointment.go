package models

import "time"

// Appointment is a confirmed wizard booking.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	ServiceID   string    `bson:"service_id" json:"service_id"`
	ProviderID  string    `bson:"provider_id" json:"provider_id"`
	LocationID  string    `bson:"location_id" json:"location_id"`
	Date        string    `bson:"date" json:"date"`          // "YYYY-MM-DD"
	TimeSlot    string    `bson:"time_slot" json:"time_slot"` // e.g. "8:30 AM"
	ClientName  string    `bson:"client_name" json:"client_name"`
	ClientEmail string    `bson:"client_email" json:"client_email"`
	ClientPhone string    `bson:"client_phone" json:"client_phone"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      string    `bson:"status" json:"status"` // e.g. "confirmed"
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
