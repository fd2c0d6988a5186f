// internal/app/store/members/memberstore.go
package memberstore

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
	return &Store{c: db.Collection("members")}
}

// Create inserts a new membership application. Duplicate emails are
// accepted; the review list flags them so reviewers decide.
func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	now := time.Now().UTC()

	m.ID = primitive.NewObjectID()
	m.Name = normalize.Name(m.Name)
	m.NameCI = text.Fold(m.Name)
	m.Email = normalize.Email(m.Email)
	m.Mobile = normalize.Mobile(m.Mobile)
	m.EnrollmentNumber = normalize.Enrollment(m.EnrollmentNumber)
	m.SubmittedTimestamp = now.UnixMilli()
	m.CreatedAt = now
	m.UpdatedAt = now

	if m.Name == "" {
		return models.Member{}, mongo.CommandError{Message: "name is required"}
	}
	if m.Email == "" {
		return models.Member{}, mongo.CommandError{Message: "email is required"}
	}

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// GetByID returns an application by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	var m models.Member
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// GetAll returns every application, newest submission first.
func (s *Store) GetAll(ctx context.Context) ([]models.Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_timestamp", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// SetPaymentStatus flips the reviewed payment flag.
func (s *Store) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, paid bool) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"payment_status": paid,
		"updated_at":     time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Update modifies mutable fields of an application and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Member) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Name) != "" {
		name := normalize.Name(mut.Name)
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	if strings.TrimSpace(mut.Email) != "" {
		set["email"] = normalize.Email(mut.Email)
	}

	set["mobile"] = normalize.Mobile(mut.Mobile)
	set["course"] = mut.Course
	set["enrollment_number"] = normalize.Enrollment(mut.EnrollmentNumber)
	set["faculty_number"] = mut.FacultyNumber
	set["discord_id"] = mut.DiscordID

	set["updated_at"] = time.Now().UTC()

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
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
// A nil filter counts everything.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.c.CountDocuments(ctx, filter)
}
