package inventoryRepo

import (
	"context"
	"errors"
	"time"

	"aurora/database"
	"aurora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no inventory item matches the given id.
var ErrNotFound = errors.New("inventory item not found")

// InventoryRepository provides persistence for stocked items.
type InventoryRepository interface {
	Create(ctx context.Context, item models.InventoryItem) (string, error)
	GetAll(ctx context.Context) ([]models.InventoryItem, error)
	Update(ctx context.Context, item models.InventoryItem) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoInventoryRepo struct {
	coll *mongo.Collection
}

// NewMongoInventoryRepo returns an InventoryRepository backed by MongoDB.
func NewMongoInventoryRepo() InventoryRepository {
	return &mongoInventoryRepo{
		coll: database.DB().Collection("inventory"),
	}
}

func (r *mongoInventoryRepo) Create(ctx context.Context, item models.InventoryItem) (string, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (r *mongoInventoryRepo) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoInventoryRepo) Update(ctx context.Context, item models.InventoryItem) error {
	item.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoInventoryRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
