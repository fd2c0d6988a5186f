package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateEvent creates a test event with the given name and status.
func (f *Fixtures) CreateEvent(ctx context.Context, name, status string) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	ev := models.Event{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Date:      "2026-03-15",
		Place:     "Main Auditorium",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("events").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}

// CreateMember creates a test membership application.
func (f *Fixtures) CreateMember(ctx context.Context, name, email string, paid bool) models.Member {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Member{
		ID:                 primitive.NewObjectID(),
		Name:               name,
		NameCI:             text.Fold(name),
		Email:              email,
		Mobile:             "9876543210",
		Course:             "B.Tech",
		PaymentStatus:      paid,
		SubmittedTimestamp: now.UnixMilli(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := f.db.Collection("members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return m
}

// CreateProject creates a test project.
func (f *Fixtures) CreateProject(ctx context.Context, name string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		Description:  "<p>Test project description</p>",
		Technologies: []string{"Go", "ROS"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return p
}

// CreateLandingProject creates a test landing project.
func (f *Fixtures) CreateLandingProject(ctx context.Context, title string) models.LandingProject {
	f.t.Helper()

	now := time.Now().UTC()
	lp := models.LandingProject{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Status:    models.LandingInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("landing_projects").InsertOne(ctx, lp); err != nil {
		f.t.Fatalf("failed to create test landing project: %v", err)
	}
	return lp
}

// CreateFaculty creates a test faculty entry in the given category.
func (f *Fixtures) CreateFaculty(ctx context.Context, name, category string) models.Faculty {
	f.t.Helper()

	now := time.Now().UTC()
	fac := models.Faculty{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Department: "Mechanical Engineering",
		Category:   category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("faculty").InsertOne(ctx, fac); err != nil {
		f.t.Fatalf("failed to create test faculty: %v", err)
	}
	return fac
}

// CreateTeam creates a test team roster for the given year.
func (f *Fixtures) CreateTeam(ctx context.Context, year string, members ...models.TeamMember) models.Team {
	f.t.Helper()

	now := time.Now().UTC()
	team := models.Team{
		ID:        primitive.NewObjectID(),
		Year:      year,
		Members:   members,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("teams").InsertOne(ctx, team); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}
	return team
}

// CreateFestApplication creates a test fest application.
func (f *Fixtures) CreateFestApplication(ctx context.Context, name, email string) models.FestApplication {
	f.t.Helper()

	now := time.Now().UTC()
	app := models.FestApplication{
		ID:              primitive.NewObjectID(),
		Name:            name,
		NameCI:          text.Fold(name),
		Email:           email,
		TeamPreference1: "events",
		TeamPreference2: "publicity",
		Status:          models.FestPending,

		SubmittedTimestamp: now.UnixMilli(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := f.db.Collection("fest_applications").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test fest application: %v", err)
	}
	return app
}

// CreateGalleryItem creates a test gallery record.
func (f *Fixtures) CreateGalleryItem(ctx context.Context, caption, path string) models.GalleryItem {
	f.t.Helper()

	now := time.Now().UTC()
	item := models.GalleryItem{
		ID:        primitive.NewObjectID(),
		Caption:   caption,
		Path:      path,
		URL:       "/media/" + path,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("gallery").InsertOne(ctx, item); err != nil {
		f.t.Fatalf("failed to create test gallery item: %v", err)
	}
	return item
}

// CreateAdminUser creates an authorized admin user record.
func (f *Fixtures) CreateAdminUser(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		Email:      email,
		GoogleUID:  "google-uid-" + primitive.NewObjectID().Hex(),
		Authorized: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test admin user: %v", err)
	}
	return u
}
