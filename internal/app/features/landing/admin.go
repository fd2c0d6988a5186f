// internal/app/features/landing/admin.go
package landing

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	landingstore "github.com/roboticsclub/robohub/internal/app/store/landing"
	"github.com/roboticsclub/robohub/internal/app/system/inputval"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/uploads"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// landingInput defines validation rules for the landing project form.
type landingInput struct {
	Title  string `validate:"required,max=200" label:"Title"`
	Status string `validate:"required,oneof=in_progress completed" label:"Status"`
}

type adminListVM struct {
	viewdata.BaseVM
	Projects []models.LandingProject
	Cap      int
	AtCap    bool
}

type landingFormVM struct {
	viewdata.BaseVM
	Project      models.LandingProject
	Technologies string
	Team         string
	IsEdit       bool
	Message      string
}

// ServeAdminList handles GET /admin/landing.
func (h *AdminHandler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	lps, err := landingstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading landing projects", err, "Could not load landing projects.", "/admin")
		return
	}

	data := adminListVM{
		BaseVM:   viewdata.NewBaseVM(r, "Landing Page Projects", "/admin"),
		Projects: lps,
		Cap:      models.LandingProjectCap,
		AtCap:    len(lps) >= models.LandingProjectCap,
	}
	templates.Render(w, r, "landing_admin_list", data)
}

// ServeNew handles GET /admin/landing/new.
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := landingFormVM{
		BaseVM: viewdata.NewBaseVM(r, "New Landing Project", "/admin/landing"),
	}
	templates.Render(w, r, "landing_form", data)
}

// HandleCreate handles POST /admin/landing.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/landing")
		return
	}

	lp := landingFromForm(r)

	reRender := func(msg string) {
		data := landingFormVM{
			BaseVM:       viewdata.NewBaseVM(r, "New Landing Project", "/admin/landing"),
			Project:      lp,
			Technologies: r.FormValue("technologies"),
			Team:         r.FormValue("team"),
			Message:      msg,
		}
		templates.Render(w, r, "landing_form", data)
	}

	if result := inputval.Validate(landingInput{Title: lp.Title, Status: lp.Status}); result.HasErrors() {
		reRender(result.First())
		return
	}

	imagePath, ok := h.uploadImage(r, &lp, reRender)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := landingstore.New(h.DB).Create(ctx, lp); err != nil {
		uploads.Cleanup(ctx, h.Storage, h.Log, imagePath)
		if errors.Is(err, landingstore.ErrCapReached) {
			reRender("The landing page already has the maximum number of projects. Delete one first.")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error creating landing project", err, "Could not save the project.", "/admin/landing")
		return
	}

	h.Log.Info("landing project created", zap.String("title", lp.Title))
	http.Redirect(w, r, "/admin/landing", http.StatusSeeOther)
}

// ServeEdit handles GET /admin/landing/{id}/edit.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad landing project id", err, "Invalid link.", "/admin/landing")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lp, err := landingstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "landing project not found", err, "That project does not exist.", "/admin/landing")
		return
	}

	data := landingFormVM{
		BaseVM:       viewdata.NewBaseVM(r, "Edit Landing Project", "/admin/landing"),
		Project:      lp,
		Technologies: strings.Join(lp.Technologies, ", "),
		Team:         formatTeam(lp.Team),
		IsEdit:       true,
	}
	templates.Render(w, r, "landing_form", data)
}

// HandleEdit handles POST /admin/landing/{id}/edit.
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad landing project id", err, "Invalid link.", "/admin/landing")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/landing")
		return
	}

	lp := landingFromForm(r)

	reRender := func(msg string) {
		lp.ID = id
		data := landingFormVM{
			BaseVM:       viewdata.NewBaseVM(r, "Edit Landing Project", "/admin/landing"),
			Project:      lp,
			Technologies: r.FormValue("technologies"),
			Team:         r.FormValue("team"),
			IsEdit:       true,
			Message:      msg,
		}
		templates.Render(w, r, "landing_form", data)
	}

	if result := inputval.Validate(landingInput{Title: lp.Title, Status: lp.Status}); result.HasErrors() {
		reRender(result.First())
		return
	}

	imagePath, ok := h.uploadImage(r, &lp, reRender)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := landingstore.New(h.DB).Update(ctx, id, lp); err != nil {
		uploads.Cleanup(ctx, h.Storage, h.Log, imagePath)
		h.ErrLog.LogServerError(w, r, "database error updating landing project", err, "Could not save the project.", "/admin/landing")
		return
	}

	http.Redirect(w, r, "/admin/landing", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/landing/{id}/delete. Removing a
// card frees a slot under the landing page cap.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad landing project id", err, "Invalid link.", "/admin/landing")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := landingstore.New(h.DB)
	lp, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "landing project not found", err, "That project does not exist.", "/admin/landing")
		return
	}

	if _, err := store.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting landing project", err, "Could not delete the project.", "/admin/landing")
		return
	}
	uploads.Cleanup(ctx, h.Storage, h.Log, lp.ImagePath)

	http.Redirect(w, r, "/admin/landing", http.StatusSeeOther)
}

// landingFromForm builds a LandingProject from the posted form fields.
func landingFromForm(r *http.Request) models.LandingProject {
	return models.LandingProject{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Date:         strings.TrimSpace(r.FormValue("date")),
		Category:     strings.TrimSpace(r.FormValue("category")),
		Status:       strings.TrimSpace(r.FormValue("status")),
		GitHub:       strings.TrimSpace(r.FormValue("github")),
		Demo:         strings.TrimSpace(r.FormValue("demo")),
		Technologies: parseTechnologies(r.FormValue("technologies")),
		Team:         parseTeam(r.FormValue("team")),
	}
}

func parseTechnologies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseTeam reads one member per line, "Name | linkedin-id" with the
// linkedin part optional.
func parseTeam(s string) []models.LandingTeamMember {
	var out []models.LandingTeamMember
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, linkedin, _ := strings.Cut(line, "|")
		m := models.LandingTeamMember{
			Name:     strings.TrimSpace(name),
			Linkedin: strings.TrimSpace(linkedin),
		}
		if m.Name != "" {
			out = append(out, m)
		}
	}
	return out
}

func formatTeam(team []models.LandingTeamMember) string {
	var b strings.Builder
	for _, m := range team {
		b.WriteString(m.Name)
		if m.Linkedin != "" {
			b.WriteString(" | ")
			b.WriteString(m.Linkedin)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// uploadImage stores the optional card image and fills the project's
// image fields. Returns the new storage path ("" when no file was
// sent) and whether the caller should continue.
func (h *AdminHandler) uploadImage(r *http.Request, lp *models.LandingProject, reRender func(string)) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil || header == nil || header.Size == 0 {
		return "", true
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if !strings.HasPrefix(contentType, "image/") {
		reRender("Card image must be an image file.")
		return "", false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	info, err := uploads.Upload(ctx, h.Storage, "landing", header.Filename, file, header.Size, contentType)
	if err != nil {
		h.Log.Error("landing image upload failed", zap.Error(err))
		reRender("Failed to upload the image. Please try again.")
		return "", false
	}

	lp.ImagePath = info.Path
	lp.Image = h.Storage.URL(info.Path)
	return info.Path, true
}
