// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureMembers(ctx, db); err != nil {
		problems = append(problems, "members: "+err.Error())
	}
	if err := ensureTeams(ctx, db); err != nil {
		problems = append(problems, "teams: "+err.Error())
	}
	if err := ensureEvents(ctx, db); err != nil {
		problems = append(problems, "events: "+err.Error())
	}
	if err := ensureProjects(ctx, db); err != nil {
		problems = append(problems, "projects: "+err.Error())
	}
	if err := ensureFaculty(ctx, db); err != nil {
		problems = append(problems, "faculty: "+err.Error())
	}
	if err := ensureGallery(ctx, db); err != nil {
		problems = append(problems, "gallery: "+err.Error())
	}
	if err := ensureFestApplications(ctx, db); err != nil {
		problems = append(problems, "fest_applications: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Core helper: reconcile a set of desired indexes for one collection         */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameBoolPtr(a, b *bool) bool {
	av := a != nil && *a
	bv := b != nil && *b
	return av == bv
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		var desiredName string
		var desiredUnique *bool
		if m.Options != nil {
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
			if m.Options.Unique != nil {
				desiredUnique = m.Options.Unique
			}
		}
		desiredSig := keySig(m.Keys.(bson.D))

		start := time.Now()
		zap.L().Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique))

		// Load existing indexes keyed by their key signature.
		existing := map[string]existingIndex{}
		cur, err := coll.Indexes().List(ctx)
		if err == nil {
			for cur.Next(ctx) {
				var idx existingIndex
				if err := cur.Decode(&idx); err != nil {
					zap.L().Warn("failed to decode existing index",
						zap.String("collection", coll.Name()),
						zap.Error(err))
					continue
				}
				existing[keySig(idx.Key)] = idx
			}
			cur.Close(ctx)
		}

		if ex, ok := existing[desiredSig]; ok {
			if sameBoolPtr(desiredUnique, ex.Unique) {
				zap.L().Info("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", desiredSig),
					zap.String("took", time.Since(start).String()))
				continue
			}

			// Options mismatch (e.g., upgrading to unique). Drop & recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			zap.L().Warn("index ensure failed",
				zap.String("collection", coll.Name()),
				zap.String("name", desiredName),
				zap.String("keys", desiredSig),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", desiredSig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique),
			zap.String("took", time.Since(start).String()))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                              */
/* -------------------------------------------------------------------------- */

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("users")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Email must be unique across all admin users.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		// Google subject lookup on every OAuth sign-in. Sparse so users
		// created before their first Google login don't collide on "".
		{
			Keys:    bson.D{{Key: "google_uid", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_users_googleuid"),
		},
	})
}

func ensureMembers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("members")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Duplicate-email detection in the review list. Not unique:
		// re-applying is allowed, reviewers just see the flag.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_members_email"),
		},
		// Admin list pages: name prefix search + stable sort.
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_members_nameci__id"),
		},
		// Newest-first listing of applications.
		{
			Keys:    bson.D{{Key: "submitted_timestamp", Value: -1}},
			Options: options.Index().SetName("idx_members_submitted"),
		},
	})
}

func ensureTeams(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("teams")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// One roster document per academic year.
		{
			Keys:    bson.D{{Key: "year", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_teams_year"),
		},
	})
}

func ensureEvents(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("events")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Public listing: status buckets sorted by date.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_events_status_date"),
		},
		// Name prefix search in the admin list.
		{
			Keys:    bson.D{{Key: "event_name_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_events_nameci__id"),
		},
	})
}

func ensureProjects(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("projects")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_projects_nameci__id"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_projects_category"),
		},
	})
}

func ensureFaculty(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("faculty")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Public page groups by category (advisor / incharge / patron).
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("idx_faculty_category_nameci"),
		},
	})
}

func ensureGallery(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("gallery")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Newest-first gallery wall.
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_gallery_created"),
		},
	})
}

func ensureFestApplications(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("fest_applications")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Review queue: filter by status, newest first.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "submitted_timestamp", Value: -1}},
			Options: options.Index().SetName("idx_festapps_status_submitted"),
		},
		// Duplicate-email detection in the review list. Not unique:
		// re-applying is allowed, reviewers just see the flag.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_festapps_email"),
		},
	})
}
