package auditRepo

import (
	"context"
	"time"

	"aurora/database"
	"aurora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditRepository stores the append-only audit trail.
type AuditRepository interface {
	Append(ctx context.Context, event models.AuditEvent) (string, error)
	GetAll(ctx context.Context) ([]models.AuditEvent, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns an AuditRepository backed by MongoDB.
func NewMongoAuditRepo() AuditRepository {
	return &mongoAuditRepo{
		coll: database.DB().Collection("audit_events"),
	}
}

// Append inserts a new audit event and returns its ID.
func (r *mongoAuditRepo) Append(ctx context.Context, event models.AuditEvent) (string, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return "", err
	}
	return event.ID, nil
}

// GetAll returns every audit event, newest first.
func (r *mongoAuditRepo) GetAll(ctx context.Context) ([]models.AuditEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.AuditEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
