package models

import "time"

// Wizard steps, strictly linear. Each selection advances the step by one.
const (
	StepSelectService   = 1
	StepSelectProvider  = 2
	StepSelectLocation  = 3
	StepSelectDate      = 4
	StepSelectTime      = 5
	StepEnterClientInfo = 6
	StepConfirmation    = 7
)

// ClientInfo is the contact block collected at step 6.
type ClientInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// BookingSession holds one wizard run between initiation and confirmation.
// Backward navigation never clears previously stored selections.
type BookingSession struct {
	SessionID  string     `json:"sessionId"`
	Step       int        `json:"step"`
	ServiceID  string     `json:"serviceId,omitempty"`
	ProviderID string     `json:"providerId,omitempty"`
	LocationID string     `json:"locationId,omitempty"`
	Date       string     `json:"date,omitempty"` // "YYYY-MM-DD"
	TimeSlot   string     `json:"time,omitempty"` // e.g. "8:30 AM"
	ClientInfo ClientInfo `json:"clientInfo"`
	CreatedAt  time.Time  `json:"createdAt"`
}
