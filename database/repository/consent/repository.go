package consentRepo

import (
	"context"

	"aurora/database"
	"aurora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConsentRepository provides persistence for consent forms.
type ConsentRepository interface {
	Create(ctx context.Context, form models.ConsentForm) (string, error)
	GetByID(ctx context.Context, id string) (*models.ConsentForm, error)
	GetAll(ctx context.Context) ([]models.ConsentForm, error)
	Update(ctx context.Context, form models.ConsentForm) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoConsentRepo struct {
	coll *mongo.Collection
}

// NewMongoConsentRepo returns a ConsentRepository backed by MongoDB.
func NewMongoConsentRepo() ConsentRepository {
	return &mongoConsentRepo{
		coll: database.DB().Collection("consent_forms"),
	}
}
