// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/roboticsclub/robohub/internal/app/store/users"
	"github.com/roboticsclub/robohub/internal/domain/models"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// A fresh deployment has no admin users, which means nobody can pass the
// Google sign-in authorization check. When admin_email is configured, an
// authorized user record is created (or an existing one authorized) here
// so the first admin can sign in.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.AdminEmail != "" {
		if err := ensureAdminUser(ctx, deps, appCfg.AdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureAdminUser creates an authorized admin user with the given email,
// or flips authorized on an existing record. Idempotent.
func ensureAdminUser(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	users := userstore.New(deps.MongoDatabase)

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Authorized {
			logger.Info("admin user already authorized", zap.String("email", existing.Email))
			return nil
		}
		if err := users.SetAuthorized(ctx, existing.ID, true); err != nil {
			return err
		}
		logger.Info("authorized existing admin user", zap.String("email", existing.Email))
		return nil

	case errors.Is(err, mongo.ErrNoDocuments):
		created, err := users.Create(ctx, models.User{
			FullName:   "Site Admin",
			Email:      email,
			Authorized: true,
		})
		if err != nil {
			return err
		}
		logger.Info("created admin user", zap.String("email", created.Email))
		return nil

	default:
		return err
	}
}
