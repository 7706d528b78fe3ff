package catalogRepo

import (
	"context"
	"errors"

	"aurora/database"
	"aurora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a catalog entry does not exist.
var ErrNotFound = errors.New("catalog entry not found")

// CatalogRepository serves the fixed service/provider/location catalogs the
// booking wizard selects from.
type CatalogRepository interface {
	Services(ctx context.Context) ([]models.Service, error)
	ServiceByID(ctx context.Context, id string) (*models.Service, error)
	Providers(ctx context.Context) ([]models.Provider, error)
	ProviderByID(ctx context.Context, id string) (*models.Provider, error)
	Locations(ctx context.Context) ([]models.Location, error)
	LocationByID(ctx context.Context, id string) (*models.Location, error)
	Seed(ctx context.Context, services []models.Service, providers []models.Provider, locations []models.Location) error
}

type mongoCatalogRepo struct {
	services  *mongo.Collection
	providers *mongo.Collection
	locations *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		services:  db.Collection("services"),
		providers: db.Collection("providers"),
		locations: db.Collection("locations"),
	}
}

func (r *mongoCatalogRepo) Services(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Service
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoCatalogRepo) ServiceByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *mongoCatalogRepo) Providers(ctx context.Context) ([]models.Provider, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.providers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Provider
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoCatalogRepo) ProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	var prov models.Provider
	if err := r.providers.FindOne(ctx, bson.M{"id": id}).Decode(&prov); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &prov, nil
}

func (r *mongoCatalogRepo) Locations(ctx context.Context) ([]models.Location, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.locations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Location
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoCatalogRepo) LocationByID(ctx context.Context, id string) (*models.Location, error) {
	var loc models.Location
	if err := r.locations.FindOne(ctx, bson.M{"id": id}).Decode(&loc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// Seed loads the fixed catalogs when the collections are empty. It never
// overwrites existing entries.
func (r *mongoCatalogRepo) Seed(ctx context.Context, services []models.Service, providers []models.Provider, locations []models.Location) error {
	if n, err := r.services.CountDocuments(ctx, bson.M{}); err != nil {
		return err
	} else if n == 0 && len(services) > 0 {
		docs := make([]interface{}, len(services))
		for i, s := range services {
			docs[i] = s
		}
		if _, err := r.services.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	if n, err := r.providers.CountDocuments(ctx, bson.M{}); err != nil {
		return err
	} else if n == 0 && len(providers) > 0 {
		docs := make([]interface{}, len(providers))
		for i, p := range providers {
			docs[i] = p
		}
		if _, err := r.providers.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	if n, err := r.locations.CountDocuments(ctx, bson.M{}); err != nil {
		return err
	} else if n == 0 && len(locations) > 0 {
		docs := make([]interface{}, len(locations))
		for i, l := range locations {
			docs[i] = l
		}
		if _, err := r.locations.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	return nil
}
