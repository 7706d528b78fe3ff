package models

import "time"

// Consent form types.
const (
	FormTypeConsent = "consent"
	FormTypeGFE     = "gfe"
	FormTypeIntake  = "intake"
)

// Consent display states.
const (
	ConsentPending = "pending"
	ConsentSigned  = "signed"
	ConsentExpired = "expired"
)

// ConsentForm is a client-authorization record, optionally carrying an
// uploaded document.
type ConsentForm struct {
	ID               string     `bson:"id" json:"id"`
	ClientID         string     `bson:"client_id" json:"client_id"`
	ServiceID        string     `bson:"service_id" json:"service_id"`
	FormType         string     `bson:"form_type" json:"form_type"`
	DigitalSignature string     `bson:"digital_signature,omitempty" json:"digital_signature,omitempty"`
	FileURL          string     `bson:"file_url,omitempty" json:"file_url,omitempty"`
	DateSigned       *time.Time `bson:"date_signed,omitempty" json:"date_signed,omitempty"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
}

// ConsentStatus is the derived display status of a consent form. ExpiredAt is
// set only when State is "expired" and carries the instant the form expired.
type ConsentStatus struct {
	State     string     `json:"state"`
	ExpiredAt *time.Time `json:"expired_at,omitempty"`
}

// ConsentFormView is a ConsentForm joined with its derived status and, when a
// file exists, a resolvable link.
type ConsentFormView struct {
	ConsentForm
	Status   ConsentStatus `json:"status"`
	FileLink string        `json:"file_link,omitempty"`
}
