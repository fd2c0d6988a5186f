// internal/app/features/landing/handler.go
package landing

import (
	"github.com/dalemusser/waffle/pantry/storage"
	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AdminHandler manages the landing-page project cards. The cards
// themselves are rendered by the home feature; this handler only
// covers the back office.
type AdminHandler struct {
	DB      *mongo.Database
	Storage storage.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewAdminHandler constructs an AdminHandler bound to the given Mongo
// database, file storage, and logger.
func NewAdminHandler(db *mongo.Database, store storage.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		DB:      db,
		Storage: store,
		Log:     logger,
		ErrLog:  errLog,
	}
}
