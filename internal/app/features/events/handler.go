// internal/app/features/events/handler.go
package events

import (
	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	"github.com/dalemusser/waffle/pantry/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public event pages (list and detail).
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// AdminHandler owns the back-office event handlers
// (list, new, edit, delete) including poster uploads.
//
// It is constructed once at startup in bootstrap, using the
// shared Mongo database handle, file storage, and logger.
type AdminHandler struct {
	DB      *mongo.Database
	Storage storage.Store
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler constructs the public Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
	}
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
