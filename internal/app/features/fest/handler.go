// internal/app/features/fest/handler.go
package fest

import (
	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	"github.com/roboticsclub/robohub/internal/app/system/captcha"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public fest team application form.
type Handler struct {
	DB      *mongo.Database
	Captcha *captcha.Verifier
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// AdminHandler owns the fest application review list.
type AdminHandler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs the public Handler.
func NewHandler(db *mongo.Database, verifier *captcha.Verifier, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
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
