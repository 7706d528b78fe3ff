package models

// Service is a bookable treatment offered by the spa.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Category        string  `bson:"category,omitempty" json:"category,omitempty"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	RequiresConsent bool    `bson:"requires_consent" json:"requires_consent"`
}
