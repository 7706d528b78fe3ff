package models

// BookingRequest is an inbound booking inquiry submitted through the public
// request endpoint. Records live in a process-local store and are never
// removed; restarts drop them.
type BookingRequest struct {
	ID        string `json:"id"`     // "booking_<epoch-ms>"
	UserID    string `json:"userId"` // derived pseudo identity
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	About     string `json:"about"`
	Status    string `json:"status"`    // always "pending" at creation
	CreatedAt string `json:"createdAt"` // ISO-8601
}
