package consentRepo

import (
	"context"
	"errors"
	"time"

	"aurora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no consent form matches the given id.
var ErrNotFound = errors.New("consent form not found")

// Create inserts a new consent form and returns its ID.
func (r *mongoConsentRepo) Create(ctx context.Context, form models.ConsentForm) (string, error) {
	if form.ID == "" {
		form.ID = uuid.New().String()
	}
	form.CreatedAt = time.Now()
	form.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, form); err != nil {
		return "", err
	}
	return form.ID, nil
}

// GetByID returns a consent form by its ID.
func (r *mongoConsentRepo) GetByID(ctx context.Context, id string) (*models.ConsentForm, error) {
	var form models.ConsentForm
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// GetAll returns every consent form, newest first.
func (r *mongoConsentRepo) GetAll(ctx context.Context) ([]models.ConsentForm, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []models.ConsentForm
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// Update replaces the stored form with the given one.
func (r *mongoConsentRepo) Update(ctx context.Context, form models.ConsentForm) error {
	form.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": form.ID}, form)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a consent form by ID.
func (r *mongoConsentRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
