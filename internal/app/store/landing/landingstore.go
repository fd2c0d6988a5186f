// internal/app/store/landing/landingstore.go
package landingstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrCapReached is returned by Create when the landing page already has
// its full set of featured projects. An existing card must be deleted
// before a new one can be added.
var ErrCapReached = errors.New("landing project limit reached; delete one before adding another")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("landing_projects")}
}

// Create inserts a new LandingProject, enforcing the page cap.
func (s *Store) Create(ctx context.Context, lp models.LandingProject) (models.LandingProject, error) {
	now := time.Now().UTC()

	lp.ID = primitive.NewObjectID()
	lp.TitleCI = text.Fold(lp.Title)
	if lp.Status == "" {
		lp.Status = models.LandingInProgress
	}
	lp.CreatedAt = now
	lp.UpdatedAt = now

	if strings.TrimSpace(lp.Title) == "" {
		return models.LandingProject{}, mongo.CommandError{Message: "title is required"}
	}
	if !models.IsValidLandingStatus(lp.Status) {
		return models.LandingProject{}, mongo.CommandError{Message: "status must be 'in_progress' or 'completed'"}
	}

	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.LandingProject{}, err
	}
	if n >= models.LandingProjectCap {
		return models.LandingProject{}, ErrCapReached
	}

	if _, err := s.c.InsertOne(ctx, lp); err != nil {
		return models.LandingProject{}, err
	}
	return lp, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.LandingProject) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Title) != "" {
		set["title"] = mut.Title
		set["title_ci"] = text.Fold(mut.Title)
	}
	if mut.Status != "" {
		if !models.IsValidLandingStatus(mut.Status) {
			return mongo.CommandError{Message: "status must be 'in_progress' or 'completed'"}
		}
		set["status"] = mut.Status
	}

	set["description"] = mut.Description
	set["date"] = mut.Date
	set["category"] = mut.Category
	set["github"] = mut.GitHub
	set["demo"] = mut.Demo
	set["technologies"] = mut.Technologies
	set["team"] = mut.Team

	if mut.ImagePath != "" {
		set["image_path"] = mut.ImagePath
		set["image"] = mut.Image
	}

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

// GetByID returns a landing project by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.LandingProject, error) {
	var lp models.LandingProject
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&lp); err != nil {
		return models.LandingProject{}, err
	}
	return lp, nil
}

// GetAll returns the landing projects, oldest first so card order is stable.
func (s *Store) GetAll(ctx context.Context) ([]models.LandingProject, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []models.LandingProject
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete removes a landing project by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
