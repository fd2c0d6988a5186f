// internal/app/features/events/admin.go
package events

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	eventstore "github.com/roboticsclub/robohub/internal/app/store/events"
	"github.com/roboticsclub/robohub/internal/app/system/htmlsanitize"
	"github.com/roboticsclub/robohub/internal/app/system/inputval"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/uploads"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// eventInput defines validation rules for the admin event form.
type eventInput struct {
	Name   string `validate:"required,max=200" label:"Event name"`
	Status string `validate:"required,oneof=upcoming ongoing past" label:"Status"`
}

type adminListVM struct {
	viewdata.BaseVM
	Events []models.Event
}

type eventFormVM struct {
	viewdata.BaseVM
	Event   models.Event
	IsEdit  bool
	Message string
}

// ServeAdminList handles GET /admin/events.
func (h *AdminHandler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	evts, err := eventstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading events", err, "Could not load events.", "/admin")
		return
	}

	data := adminListVM{
		BaseVM: viewdata.NewBaseVM(r, "Manage Events", "/admin"),
		Events: evts,
	}
	templates.Render(w, r, "events_admin_list", data)
}

// ServeNew handles GET /admin/events/new.
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := eventFormVM{
		BaseVM: viewdata.NewBaseVM(r, "New Event", "/admin/events"),
	}
	templates.Render(w, r, "events_form", data)
}

// HandleCreate handles POST /admin/events.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Multipart for the poster upload (16MB max).
	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/events")
		return
	}

	ev := eventFromForm(r)

	reRender := func(msg string) {
		data := eventFormVM{
			BaseVM:  viewdata.NewBaseVM(r, "New Event", "/admin/events"),
			Event:   ev,
			Message: msg,
		}
		templates.Render(w, r, "events_form", data)
	}

	if result := inputval.Validate(eventInput{Name: ev.Name, Status: ev.Status}); result.HasErrors() {
		reRender(result.First())
		return
	}

	posterPath, ok := h.uploadPoster(r, &ev, reRender)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := eventstore.New(h.DB).Create(ctx, ev); err != nil {
		// The poster blob is orphaned if the insert failed; remove it.
		uploads.Cleanup(ctx, h.Storage, h.Log, posterPath)
		h.ErrLog.LogServerError(w, r, "database error creating event", err, "Could not save the event.", "/admin/events")
		return
	}

	h.Log.Info("event created", zap.String("name", ev.Name))
	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
}

// ServeEdit handles GET /admin/events/{id}/edit.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad event id", err, "Invalid event link.", "/admin/events")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ev, err := eventstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "event not found", err, "That event does not exist.", "/admin/events")
		return
	}

	data := eventFormVM{
		BaseVM: viewdata.NewBaseVM(r, "Edit Event", "/admin/events"),
		Event:  ev,
		IsEdit: true,
	}
	templates.Render(w, r, "events_form", data)
}

// HandleEdit handles POST /admin/events/{id}/edit.
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad event id", err, "Invalid event link.", "/admin/events")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/events")
		return
	}

	ev := eventFromForm(r)

	reRender := func(msg string) {
		ev.ID = id
		data := eventFormVM{
			BaseVM:  viewdata.NewBaseVM(r, "Edit Event", "/admin/events"),
			Event:   ev,
			IsEdit:  true,
			Message: msg,
		}
		templates.Render(w, r, "events_form", data)
	}

	if result := inputval.Validate(eventInput{Name: ev.Name, Status: ev.Status}); result.HasErrors() {
		reRender(result.First())
		return
	}

	posterPath, ok := h.uploadPoster(r, &ev, reRender)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := eventstore.New(h.DB).Update(ctx, id, ev); err != nil {
		uploads.Cleanup(ctx, h.Storage, h.Log, posterPath)
		h.ErrLog.LogServerError(w, r, "database error updating event", err, "Could not save the event.", "/admin/events")
		return
	}

	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/events/{id}/delete.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad event id", err, "Invalid event link.", "/admin/events")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := eventstore.New(h.DB)
	ev, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "event not found", err, "That event does not exist.", "/admin/events")
		return
	}

	if _, err := store.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting event", err, "Could not delete the event.", "/admin/events")
		return
	}
	// Remove the poster blob once the record is gone.
	uploads.Cleanup(ctx, h.Storage, h.Log, ev.PosterPath)

	http.Redirect(w, r, "/admin/events", http.StatusSeeOther)
}

// eventFromForm builds an Event from the posted form fields.
func eventFromForm(r *http.Request) models.Event {
	return models.Event{
		Name:        strings.TrimSpace(r.FormValue("event_name")),
		Date:        strings.TrimSpace(r.FormValue("date")),
		StartTime:   strings.TrimSpace(r.FormValue("start_time")),
		EndTime:     strings.TrimSpace(r.FormValue("end_time")),
		Place:       strings.TrimSpace(r.FormValue("place")),
		Details:     htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("details"))),
		RegFormLink: strings.TrimSpace(r.FormValue("reg_form_link")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Status:      strings.TrimSpace(r.FormValue("status")),
	}
}

// uploadPoster stores the optional poster file and fills the event's
// poster fields. Returns the new storage path ("" when no file was
// sent) and whether the caller should continue.
func (h *AdminHandler) uploadPoster(r *http.Request, ev *models.Event, reRender func(string)) (string, bool) {
	file, header, err := r.FormFile("poster")
	if err != nil || header == nil || header.Size == 0 {
		return "", true
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if !strings.HasPrefix(contentType, "image/") {
		reRender("Poster must be an image.")
		return "", false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	info, err := uploads.Upload(ctx, h.Storage, "events", header.Filename, file, header.Size, contentType)
	if err != nil {
		h.Log.Error("poster upload failed", zap.Error(err))
		reRender("Failed to upload poster. Please try again.")
		return "", false
	}

	ev.PosterPath = info.Path
	ev.PosterURL = h.Storage.URL(info.Path)
	return info.Path, true
}
