// internal/app/store/gallery/gallerystore.go
package gallerystore

import (
	"context"
	"strings"
	"time"

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
	return &Store{c: db.Collection("gallery")}
}

// Create records an uploaded media file. The blob itself is written to
// storage by the caller before this insert.
func (s *Store) Create(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	now := time.Now().UTC()

	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if strings.TrimSpace(item.Path) == "" {
		return models.GalleryItem{}, mongo.CommandError{Message: "storage path is required"}
	}

	if _, err := s.c.InsertOne(ctx, item); err != nil {
		return models.GalleryItem{}, err
	}
	return item, nil
}

// UpdateCaption changes the caption and event link of a gallery record.
func (s *Store) UpdateCaption(ctx context.Context, id primitive.ObjectID, caption, eventName string) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"caption":    caption,
		"event_name": eventName,
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

// GetByID returns a gallery record by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return models.GalleryItem{}, err
	}
	return item, nil
}

// GetAll returns all gallery records, newest upload first.
func (s *Store) GetAll(ctx context.Context) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.GalleryItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a gallery record by ID. Returns the number of documents deleted (0 or 1).
// The caller deletes the blob from storage after a successful remove.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
