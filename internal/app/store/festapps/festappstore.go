// internal/app/store/festapps/festappstore.go
package festappstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/roboticsclub/robohub/internal/app/system/normalize"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("fest_applications")}
}

// Create inserts a new fest application. Applicants may apply more than
// once; duplicate emails are surfaced at review time, not rejected here.
func (s *Store) Create(ctx context.Context, a models.FestApplication) (models.FestApplication, error) {
	now := time.Now().UTC()

	a.ID = primitive.NewObjectID()
	a.Name = normalize.Name(a.Name)
	a.NameCI = text.Fold(a.Name)
	a.Email = normalize.Email(a.Email)
	a.ContactNumber = normalize.Mobile(a.ContactNumber)
	a.EnrollmentNumber = normalize.Enrollment(a.EnrollmentNumber)
	if a.Status == "" {
		a.Status = models.FestPending
	}
	a.SubmittedTimestamp = now.UnixMilli()
	a.CreatedAt = now
	a.UpdatedAt = now

	if a.Name == "" {
		return models.FestApplication{}, mongo.CommandError{Message: "name is required"}
	}
	if a.Email == "" {
		return models.FestApplication{}, mongo.CommandError{Message: "email is required"}
	}
	if strings.TrimSpace(a.TeamPreference1) == "" {
		return models.FestApplication{}, mongo.CommandError{Message: "first team preference is required"}
	}
	if a.TeamPreference1 == a.TeamPreference2 {
		return models.FestApplication{}, mongo.CommandError{Message: "team preferences must differ"}
	}
	if !models.IsValidFestStatus(a.Status) {
		return models.FestApplication{}, mongo.CommandError{Message: "invalid application status"}
	}

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.FestApplication{}, err
	}
	return a, nil
}

// SetStatus moves an application through the review pipeline.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.IsValidFestStatus(status) {
		return mongo.CommandError{Message: "invalid application status"}
	}
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetByID returns an application by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.FestApplication, error) {
	var a models.FestApplication
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.FestApplication{}, err
	}
	return a, nil
}

// GetAll returns every application, newest submission first.
func (s *Store) GetAll(ctx context.Context) ([]models.FestApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_timestamp", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var apps []models.FestApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Delete removes an application by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of applications matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
