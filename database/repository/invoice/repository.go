package invoiceRepo

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

// InvoiceRepository provides persistence for point-of-sale invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv models.Invoice) (string, error)
	GetAll(ctx context.Context) ([]models.Invoice, error)
}

type mongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo returns an InvoiceRepository backed by MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	return &mongoInvoiceRepo{
		coll: database.DB().Collection("invoices"),
	}
}

// Create inserts a new invoice and returns its ID.
func (r *mongoInvoiceRepo) Create(ctx context.Context, inv models.Invoice) (string, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	inv.CreatedAt = time.Now()
	inv.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return "", err
	}
	return inv.ID, nil
}

// GetAll returns every invoice, newest first.
func (r *mongoInvoiceRepo) GetAll(ctx context.Context) ([]models.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}
