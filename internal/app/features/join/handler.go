// internal/app/features/join/handler.go
package join

import (
	"github.com/dalemusser/waffle/pantry/storage"
	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	"github.com/roboticsclub/robohub/internal/app/system/captcha"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public membership application form.
type Handler struct {
	DB      *mongo.Database
	Storage storage.Store
	Captcha *captcha.Verifier
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// AdminHandler owns the membership review list and its CSV export.
type AdminHandler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs the public Handler.
func NewHandler(db *mongo.Database, store storage.Store, verifier *captcha.Verifier, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Storage: store,
		Captcha: verifier,
		Log:     logger,
		ErrLog:  errLog,
	}
}

// NewAdminHandler constructs the back-office AdminHandler.
func NewAdminHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
	}
}
