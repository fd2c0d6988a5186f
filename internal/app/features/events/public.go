// internal/app/features/events/public.go
package events

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	eventstore "github.com/roboticsclub/robohub/internal/app/store/events"
	"github.com/roboticsclub/robohub/internal/app/system/htmlsanitize"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type eventListVM struct {
	viewdata.BaseVM
	Events []models.Event
	Status string
}

type eventDetailVM struct {
	viewdata.BaseVM
	Event   models.Event
	Details template.HTML // sanitized, safe to render
}

// ServeList handles GET /events with an optional ?status= filter
// (upcoming|ongoing|past|all).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status := query.Get(r, "status")
	if status == "" {
		status = "all"
	}
	if status != "all" && !models.IsValidEventStatus(status) {
		status = "all"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	evts, err := eventstore.New(h.DB).GetByStatus(ctx, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading events", err, "Could not load events.", "/")
		return
	}

	data := eventListVM{
		BaseVM: viewdata.NewBaseVM(r, "Events", "/"),
		Events: evts,
		Status: status,
	}
	templates.Render(w, r, "events_list", data)
}

// ServeDetail handles GET /events/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad event id", err, "Invalid event link.", "/events")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ev, err := eventstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "event not found", err, "That event does not exist.", "/events")
		return
	}

	data := eventDetailVM{
		BaseVM:  viewdata.NewBaseVM(r, ev.Name, "/events"),
		Event:   ev,
		Details: htmlsanitize.PrepareForDisplay(ev.Details),
	}
	templates.Render(w, r, "events_detail", data)
}
