// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/roboticsclub/robohub/internal/app/features/errors"
	eventstore "github.com/roboticsclub/robohub/internal/app/store/events"
	landingstore "github.com/roboticsclub/robohub/internal/app/store/landing"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
	}
}

type homeVM struct {
	viewdata.BaseVM
	FeaturedProjects []models.LandingProject
	UpcomingEvents   []models.Event
}

// ServeRoot handles GET /, the landing page: the featured project
// cards plus the next few upcoming events.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	featured, err := landingstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading landing projects", err, "Could not load the home page.", "/")
		return
	}

	upcoming, err := eventstore.New(h.DB).GetByStatus(ctx, models.EventUpcoming)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading events", err, "Could not load the home page.", "/")
		return
	}
	if len(upcoming) > 4 {
		upcoming = upcoming[:4]
	}

	data := homeVM{
		BaseVM:           viewdata.NewBaseVM(r, "Welcome", "/"),
		FeaturedProjects: featured,
		UpcomingEvents:   upcoming,
	}
	templates.Render(w, r, "home", data)
}
