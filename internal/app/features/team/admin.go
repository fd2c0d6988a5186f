// internal/app/features/team/admin.go
package team

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	teamstore "github.com/roboticsclub/robohub/internal/app/store/teams"
	"github.com/roboticsclub/robohub/internal/app/system/inputval"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// memberInput defines validation rules for the add-member form.
type memberInput struct {
	Name string `validate:"required,max=200" label:"Member name"`
}

type adminTeamsVM struct {
	viewdata.BaseVM
	Teams   []models.Team
	Message string
}

type rosterEditVM struct {
	viewdata.BaseVM
	Team    models.Team
	Message string
}

// ServeAdminList handles GET /admin/team.
func (h *AdminHandler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	h.renderAdminList(w, r, "")
}

func (h *AdminHandler) renderAdminList(w http.ResponseWriter, r *http.Request, msg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	teams, err := teamstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading rosters", err, "Could not load rosters.", "/admin")
		return
	}

	data := adminTeamsVM{
		BaseVM:  viewdata.NewBaseVM(r, "Team Rosters", "/admin"),
		Teams:   teams,
		Message: msg,
	}
	templates.Render(w, r, "team_admin_list", data)
}

// HandleCreate handles POST /admin/team, creating an empty roster for
// a new academic year.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	year := strings.TrimSpace(r.FormValue("year"))
	if year == "" {
		h.renderAdminList(w, r, "Year is required, e.g. 2025-26.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := teamstore.New(h.DB).Create(ctx, models.Team{Year: year}); err != nil {
		if errors.Is(err, teamstore.ErrDuplicateYear) {
			h.renderAdminList(w, r, "A roster for "+year+" already exists.")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error creating roster", err, "Could not create the roster.", "/admin/team")
		return
	}

	h.Log.Info("team roster created", zap.String("year", year))
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// ServeEdit handles GET /admin/team/{id}, the roster editor.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	h.renderEdit(w, r, "")
}

func (h *AdminHandler) renderEdit(w http.ResponseWriter, r *http.Request, msg string) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad roster id", err, "Invalid roster link.", "/admin/team")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, err := teamstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "roster not found", err, "That roster does not exist.", "/admin/team")
		return
	}

	data := rosterEditVM{
		BaseVM:  viewdata.NewBaseVM(r, "Roster "+t.Year, "/admin/team"),
		Team:    t,
		Message: msg,
	}
	templates.Render(w, r, "team_roster_edit", data)
}

// HandleAddMember handles POST /admin/team/{id}/members.
func (h *AdminHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad roster id", err, "Invalid roster link.", "/admin/team")
		return
	}

	m := memberFromForm(r)

	if result := inputval.Validate(memberInput{Name: m.Name}); result.HasErrors() {
		h.renderEdit(w, r, result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := teamstore.New(h.DB)
	t, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "roster not found", err, "That roster does not exist.", "/admin/team")
		return
	}

	t.Members = append(t.Members, m)
	if err := store.Update(ctx, id, t); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating roster", err, "Could not save the roster.", "/admin/team")
		return
	}

	http.Redirect(w, r, "/admin/team/"+id.Hex(), http.StatusSeeOther)
}

// HandleRemoveMember handles POST /admin/team/{id}/members/delete.
// The member to remove is identified by its position in the sorted list.
func (h *AdminHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad roster id", err, "Invalid roster link.", "/admin/team")
		return
	}

	idx, err := strconv.Atoi(r.FormValue("index"))
	if err != nil || idx < 0 {
		h.ErrLog.LogBadRequest(w, r, "bad member index", err, "Invalid member reference.", "/admin/team")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := teamstore.New(h.DB)
	t, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "roster not found", err, "That roster does not exist.", "/admin/team")
		return
	}

	if idx >= len(t.Members) {
		h.ErrLog.LogBadRequest(w, r, "member index out of range", nil, "Invalid member reference.", "/admin/team")
		return
	}
	t.Members = append(t.Members[:idx], t.Members[idx+1:]...)

	if err := store.Update(ctx, id, t); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating roster", err, "Could not save the roster.", "/admin/team")
		return
	}

	http.Redirect(w, r, "/admin/team/"+id.Hex(), http.StatusSeeOther)
}

// HandleDelete handles POST /admin/team/{id}/delete.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad roster id", err, "Invalid roster link.", "/admin/team")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := teamstore.New(h.DB).Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting roster", err, "Could not delete the roster.", "/admin/team")
		return
	}

	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// memberFromForm builds a TeamMember from the posted form fields.
// A missing or malformed rank lands at the end of the list.
func memberFromForm(r *http.Request) models.TeamMember {
	rank, err := strconv.Atoi(strings.TrimSpace(r.FormValue("rank")))
	if err != nil {
		rank = 1 << 20
	}
	return models.TeamMember{
		Name:            strings.TrimSpace(r.FormValue("name")),
		Email:           strings.TrimSpace(r.FormValue("email")),
		Position:        strings.TrimSpace(r.FormValue("position")),
		ProfileImageURL: strings.TrimSpace(r.FormValue("profile_image_url")),
		Rank:            rank,
		Links: models.TeamLinks{
			GitHub:    strings.TrimSpace(r.FormValue("github")),
			Linkedin:  strings.TrimSpace(r.FormValue("linkedin")),
			Twitter:   strings.TrimSpace(r.FormValue("twitter")),
			Instagram: strings.TrimSpace(r.FormValue("instagram")),
			Portfolio: strings.TrimSpace(r.FormValue("portfolio")),
		},
	}
}
