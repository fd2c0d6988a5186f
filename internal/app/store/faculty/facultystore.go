// internal/app/store/faculty/facultystore.go
package facultystore

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
	return &Store{c: db.Collection("faculty")}
}

// Create inserts a new Faculty entry, setting NameCI and timestamps.
func (s *Store) Create(ctx context.Context, f models.Faculty) (models.Faculty, error) {
	now := time.Now().UTC()

	f.ID = primitive.NewObjectID()
	f.NameCI = text.Fold(f.Name)
	f.CreatedAt = now
	f.UpdatedAt = now

	if strings.TrimSpace(f.Name) == "" {
		return models.Faculty{}, mongo.CommandError{Message: "name is required"}
	}
	if !models.IsValidFacultyCategory(f.Category) {
		return models.Faculty{}, mongo.CommandError{Message: "category must be 'advisor', 'incharge', or 'patron'"}
	}

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Faculty{}, err
	}
	return f, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Faculty) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Name) != "" {
		set["name"] = mut.Name
		set["name_ci"] = text.Fold(mut.Name)
	}
	if mut.Category != "" {
		if !models.IsValidFacultyCategory(mut.Category) {
			return mongo.CommandError{Message: "category must be 'advisor', 'incharge', or 'patron'"}
		}
		set["category"] = mut.Category
	}

	set["email"] = mut.Email
	set["department"] = mut.Department
	set["designation"] = mut.Designation

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

// GetByID returns a faculty entry by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Faculty, error) {
	var f models.Faculty
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return models.Faculty{}, err
	}
	return f, nil
}

// GetAll returns all faculty entries sorted by name.
func (s *Store) GetAll(ctx context.Context) ([]models.Faculty, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Faculty
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByCategory groups all entries by category for the public page.
// Every valid category is present in the result, possibly empty.
func (s *Store) GetByCategory(ctx context.Context) (map[string][]models.Faculty, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.Faculty, len(models.FacultyCategories))
	for _, cat := range models.FacultyCategories {
		grouped[cat] = []models.Faculty{}
	}
	for _, f := range all {
		grouped[f.Category] = append(grouped[f.Category], f)
	}
	return grouped, nil
}

// Delete removes a faculty entry by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
