package models

// Provider is a practitioner who performs treatments.
type Provider struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Specialty string  `bson:"specialty" json:"specialty"`
	Rating    float64 `bson:"rating" json:"rating"`
}
