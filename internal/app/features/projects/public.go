// internal/app/features/projects/public.go
package projects

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	projectstore "github.com/roboticsclub/robohub/internal/app/store/projects"
	"github.com/roboticsclub/robohub/internal/app/system/htmlsanitize"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type projectListVM struct {
	viewdata.BaseVM
	Projects []models.Project
}

type projectDetailVM struct {
	viewdata.BaseVM
	Project     models.Project
	Description template.HTML // sanitized, safe to render
}

// ServeList handles GET /projects.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	prjs, err := projectstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading projects", err, "Could not load projects.", "/")
		return
	}

	data := projectListVM{
		BaseVM:   viewdata.NewBaseVM(r, "Projects", "/"),
		Projects: prjs,
	}
	templates.Render(w, r, "projects_list", data)
}

// ServeDetail handles GET /projects/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad project id", err, "Invalid project link.", "/projects")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := projectstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "project not found", err, "That project does not exist.", "/projects")
		return
	}

	data := projectDetailVM{
		BaseVM:      viewdata.NewBaseVM(r, p.Name, "/projects"),
		Project:     p,
		Description: htmlsanitize.PrepareForDisplay(p.Description),
	}
	templates.Render(w, r, "projects_detail", data)
}
