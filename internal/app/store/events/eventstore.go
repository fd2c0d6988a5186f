// internal/app/store/events/eventstore.go
package eventstore

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
	return &Store{c: db.Collection("events")}
}

// Create inserts a new Event, setting NameCI and timestamps.
func (s *Store) Create(ctx context.Context, ev models.Event) (models.Event, error) {
	now := time.Now().UTC()

	ev.ID = primitive.NewObjectID()
	ev.NameCI = text.Fold(ev.Name)
	if ev.Status == "" {
		ev.Status = models.EventUpcoming
	}
	ev.CreatedAt = now
	ev.UpdatedAt = now

	if strings.TrimSpace(ev.Name) == "" {
		return models.Event{}, mongo.CommandError{Message: "event name is required"}
	}
	if !models.IsValidEventStatus(ev.Status) {
		return models.Event{}, mongo.CommandError{Message: "status must be 'upcoming', 'ongoing', or 'past'"}
	}

	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// Update modifies mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Event) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Name) != "" {
		set["event_name"] = mut.Name
		set["event_name_ci"] = text.Fold(mut.Name)
	}
	if mut.Status != "" {
		if !models.IsValidEventStatus(mut.Status) {
			return mongo.CommandError{Message: "status must be 'upcoming', 'ongoing', or 'past'"}
		}
		set["status"] = mut.Status
	}

	// Scheduling and detail fields can be cleared.
	set["date"] = mut.Date
	set["start_time"] = mut.StartTime
	set["end_time"] = mut.EndTime
	set["place"] = mut.Place
	set["details"] = mut.Details
	set["reg_form_link"] = mut.RegFormLink
	set["category"] = mut.Category

	// Poster fields are set by the caller after a successful upload.
	if mut.PosterPath != "" {
		set["poster_path"] = mut.PosterPath
		set["poster_url"] = mut.PosterURL
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

// GetByID returns an event by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var ev models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

// GetAll returns all events, newest first.
func (s *Store) GetAll(ctx context.Context) ([]models.Event, error) {
	return s.find(ctx, bson.M{})
}

// GetByStatus returns events in the given status bucket, newest first.
// An empty or "all" status returns everything.
func (s *Store) GetByStatus(ctx context.Context, status string) ([]models.Event, error) {
	if status == "" || status == "all" {
		return s.GetAll(ctx)
	}
	return s.find(ctx, bson.M{"status": status})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Delete removes an event by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of events matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
