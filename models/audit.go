package models

import "time"

// AuditEvent is one entry in the append-only audit trail.
type AuditEvent struct {
	ID        string    `bson:"id" json:"id"`
	Actor     string    `bson:"actor" json:"actor"`   // pseudo user id or "system"
	Action    string    `bson:"action" json:"action"` // e.g. "consent.created"
	Entity    string    `bson:"entity" json:"entity"` // e.g. "consent"
	EntityID  string    `bson:"entity_id" json:"entity_id"`
	Detail    string    `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
