// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/roboticsclub/robohub/internal/app/system/normalize"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

// ErrDuplicateEmail is returned when attempting to create a user with an
// email that already exists.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new admin user after normalizing fields.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	now := time.Now().UTC()

	u.ID = primitive.NewObjectID()
	u.FullName = normalize.Name(u.FullName)
	u.Email = normalize.Email(u.Email)
	u.CreatedAt = now
	u.UpdatedAt = now

	if u.Email == "" {
		return models.User{}, mongo.CommandError{Message: "email is required"}
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by normalized email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByGoogleUID looks up a user by the delegated identity provider's
// subject ID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByGoogleUID(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"google_uid": uid}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// LinkGoogleUID attaches the provider subject ID to an existing user
// record the first time that account signs in.
func (s *Store) LinkGoogleUID(ctx context.Context, id primitive.ObjectID, uid string) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"google_uid": uid,
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

// TouchLastLogin stamps the user's last successful sign-in.
func (s *Store) TouchLastLogin(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"last_login_at": now,
		"updated_at":    now,
	}})
	return err
}

// SetAuthorized flips the admin access flag for delegated sign-ins.
func (s *Store) SetAuthorized(ctx context.Context, id primitive.ObjectID, authorized bool) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"authorized": authorized,
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

// GetAll returns every admin user record.
func (s *Store) GetAll(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes a user by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
