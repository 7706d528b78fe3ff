package models

import "time"

// StaffMember is an employment record. Credentials are out of scope; staff
// records carry no secrets.
type StaffMember struct {
	ID        string    `bson:"id" json:"id"`
	FullName  string    `bson:"full_name" json:"full_name"`
	Role      string    `bson:"role" json:"role"` // e.g. "injector", "aesthetician", "front-desk"
	Specialty string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	HiredAt   time.Time `bson:"hired_at" json:"hired_at"`
}
