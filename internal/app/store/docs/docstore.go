// internal/app/store/docs/docstore.go
package docstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides collection-scoped operations over schema-less documents.
// It backs the admin field editor, which must work against any collection
// without knowing its shape.
type Store struct {
	db *mongo.Database
}

var ErrNotFound = errors.New("document not found")

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Document is an ordered view of a raw BSON document. Field order is
// preserved so the editor renders keys the way they are stored.
type Document bson.D

// Field is one editable key/value pair of a Document.
type Field struct {
	Name  string
	Value any
}

// managed fields are owned by the store and never writable by callers.
func IsManagedField(name string) bool {
	switch name {
	case "_id", "created_at", "updated_at":
		return true
	}
	return false
}

// ID returns the document's ObjectID, or NilObjectID when absent.
func (d Document) ID() primitive.ObjectID {
	for _, e := range d {
		if e.Key == "_id" {
			if id, ok := e.Value.(primitive.ObjectID); ok {
				return id
			}
		}
	}
	return primitive.NilObjectID
}

// Lookup returns the value for name and whether the key exists.
func (d Document) Lookup(name string) (any, bool) {
	for _, e := range d {
		if e.Key == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Editable returns the document's fields in stored order, excluding
// managed fields.
func (d Document) Editable() []Field {
	out := make([]Field, 0, len(d))
	for _, e := range d {
		if IsManagedField(e.Key) {
			continue
		}
		out = append(out, Field{Name: e.Key, Value: e.Value})
	}
	return out
}

// SanitizePatch returns a copy of patch with managed fields removed.
// The original map is not modified.
func SanitizePatch(patch bson.M) bson.M {
	out := make(bson.M, len(patch))
	for k, v := range patch {
		if IsManagedField(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// Create inserts a new document with stamped timestamps and returns its ID.
// Managed fields in doc are ignored.
func (s *Store) Create(ctx context.Context, collection string, doc bson.M) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	insert := SanitizePatch(doc)
	id := primitive.NewObjectID()
	insert["_id"] = id
	insert["created_at"] = now
	insert["updated_at"] = now

	if _, err := s.db.Collection(collection).InsertOne(ctx, insert); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// GetAll returns every document in the collection in natural order.
// Collections here are small back-office datasets; no pagination.
func (s *Store) GetAll(ctx context.Context, collection string) ([]Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Document
	for cur.Next(ctx) {
		var d bson.D
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, Document(d))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single document by ID.
func (s *Store) Get(ctx context.Context, collection string, id primitive.ObjectID) (Document, error) {
	var d bson.D
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return Document(d), nil
}

// Update applies a partial $set patch to the document and refreshes
// updated_at. Managed fields are stripped from the patch first. Last
// write wins; there is no optimistic concurrency.
func (s *Store) Update(ctx context.Context, collection string, id primitive.ObjectID, partial bson.M) error {
	set := SanitizePatch(partial)
	set["updated_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddField sets a single field on the document. A blank or managed field
// name is a silent no-op.
func (s *Store) AddField(ctx context.Context, collection string, id primitive.ObjectID, name string, value any) error {
	name = strings.TrimSpace(name)
	if name == "" || IsManagedField(name) {
		return nil
	}
	return s.Update(ctx, collection, id, bson.M{name: value})
}

// DeleteField removes a single field from the document and refreshes
// updated_at. Managed fields cannot be removed.
func (s *Store) DeleteField(ctx context.Context, collection string, id primitive.ObjectID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || IsManagedField(name) {
		return nil
	}

	update := bson.M{
		"$unset": bson.M{name: ""},
		"$set":   bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.db.Collection(collection).UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes a document.
func (s *Store) Delete(ctx context.Context, collection string, id primitive.ObjectID) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
