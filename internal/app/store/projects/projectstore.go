// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
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

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// Create inserts a new Project, setting NameCI and timestamps.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	now := time.Now().UTC()

	p.ID = primitive.NewObjectID()
	p.NameCI = text.Fold(p.Name)
	p.CreatedAt = now
	p.UpdatedAt = now

	if strings.TrimSpace(p.Name) == "" {
		return models.Project{}, mongo.CommandError{Message: "project name is required"}
	}

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// Update modifies mutable fields and refreshes UpdatedAt. Image fields
// are replaced wholesale when the caller has uploaded a new set.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Project) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Name) != "" {
		set["name"] = mut.Name
		set["name_ci"] = text.Fold(mut.Name)
	}

	set["description"] = mut.Description
	set["date"] = mut.Date
	set["github"] = mut.GitHub
	set["link"] = mut.Link
	set["progress"] = mut.Progress
	set["category"] = mut.Category
	set["status"] = mut.Status
	set["technologies"] = mut.Technologies
	set["team_members"] = mut.TeamMembers

	if mut.Images != nil {
		set["project_img"] = mut.Images
		set["image_paths"] = mut.ImagePaths
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

// GetByID returns a project by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// GetAll returns all projects, newest first.
func (s *Store) GetAll(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []models.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete removes a project by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
