// internal/app/store/teams/teamstore.go
package teamstore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateYear = errors.New("a team roster for this year already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teams")}
}

// Create inserts a new team roster for a year. Members are sorted by
// rank before insert so reads never need to re-sort.
func (s *Store) Create(ctx context.Context, t models.Team) (models.Team, error) {
	now := time.Now().UTC()

	t.ID = primitive.NewObjectID()
	t.Year = strings.TrimSpace(t.Year)
	sortMembers(t.Members)
	t.CreatedAt = now
	t.UpdatedAt = now

	if t.Year == "" {
		return models.Team{}, mongo.CommandError{Message: "year is required"}
	}

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Team{}, ErrDuplicateYear
		}
		return models.Team{}, err
	}
	return t, nil
}

// Update replaces the roster's member list and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Team) error {
	set := bson.M{}

	if strings.TrimSpace(mut.Year) != "" {
		set["year"] = strings.TrimSpace(mut.Year)
	}
	if mut.Members != nil {
		sortMembers(mut.Members)
		set["members"] = mut.Members
	}
	set["updated_at"] = time.Now().UTC()

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateYear
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetByID returns a roster by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Team, error) {
	var t models.Team
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return models.Team{}, err
	}
	return t, nil
}

// GetByYear returns the roster for one academic year.
func (s *Store) GetByYear(ctx context.Context, year string) (models.Team, error) {
	var t models.Team
	if err := s.c.FindOne(ctx, bson.M{"year": strings.TrimSpace(year)}).Decode(&t); err != nil {
		return models.Team{}, err
	}
	return t, nil
}

// GetAll returns all rosters, newest year first.
func (s *Store) GetAll(ctx context.Context) ([]models.Team, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teams []models.Team
	if err := cur.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Delete removes a roster by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// sortMembers orders by rank ascending, ties broken by name.
func sortMembers(members []models.TeamMember) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Rank != members[j].Rank {
			return members[i].Rank < members[j].Rank
		}
		return members[i].Name < members[j].Name
	})
}
