package staffRepo

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

// ErrNotFound is returned when no staff member matches the given id.
var ErrNotFound = errors.New("staff member not found")

// StaffRepository provides persistence for staff records.
type StaffRepository interface {
	Create(ctx context.Context, member models.StaffMember) (string, error)
	GetAll(ctx context.Context) ([]models.StaffMember, error)
	Update(ctx context.Context, member models.StaffMember) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo returns a StaffRepository backed by MongoDB.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}

func (r *mongoStaffRepo) Create(ctx context.Context, member models.StaffMember) (string, error) {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.HiredAt.IsZero() {
		member.HiredAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		return "", err
	}
	return member.ID, nil
}

func (r *mongoStaffRepo) GetAll(ctx context.Context) ([]models.StaffMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "full_name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.StaffMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *mongoStaffRepo) Update(ctx context.Context, member models.StaffMember) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": member.ID}, member)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoStaffRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
