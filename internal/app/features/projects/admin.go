// internal/app/features/projects/admin.go
package projects

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	projectstore "github.com/roboticsclub/robohub/internal/app/store/projects"
	"github.com/roboticsclub/robohub/internal/app/system/htmlsanitize"
	"github.com/roboticsclub/robohub/internal/app/system/inputval"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/uploads"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// projectInput defines validation rules for the admin project form.
type projectInput struct {
	Name string `validate:"required,max=200" label:"Project name"`
}

type adminListVM struct {
	viewdata.BaseVM
	Projects []models.Project
}

type projectFormVM struct {
	viewdata.BaseVM
	Project      models.Project
	Technologies string // comma separated, as typed in the form
	TeamMembers  string // one "Name | linkedin-id" per line
	IsEdit       bool
	Message      string
}

// ServeAdminList handles GET /admin/projects.
func (h *AdminHandler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	prjs, err := projectstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading projects", err, "Could not load projects.", "/admin")
		return
	}

	data := adminListVM{
		BaseVM:   viewdata.NewBaseVM(r, "Manage Projects", "/admin"),
		Projects: prjs,
	}
	templates.Render(w, r, "projects_admin_list", data)
}

// ServeNew handles GET /admin/projects/new.
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := projectFormVM{
		BaseVM: viewdata.NewBaseVM(r, "New Project", "/admin/projects"),
	}
	templates.Render(w, r, "projects_form", data)
}

// HandleCreate handles POST /admin/projects.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Multipart for the project images (32MB max across files).
	r.Body = http.MaxBytesReader(w, r.Body, 32<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/projects")
		return
	}

	p := projectFromForm(r)

	reRender := func(msg string) {
		data := projectFormVM{
			BaseVM:       viewdata.NewBaseVM(r, "New Project", "/admin/projects"),
			Project:      p,
			Technologies: r.FormValue("technologies"),
			TeamMembers:  r.FormValue("team_members"),
			Message:      msg,
		}
		templates.Render(w, r, "projects_form", data)
	}

	if result := inputval.Validate(projectInput{Name: p.Name}); result.HasErrors() {
		reRender(result.First())
		return
	}

	paths, ok := h.uploadImages(r, &p, reRender)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := projectstore.New(h.DB).Create(ctx, p); err != nil {
		// The image blobs are orphaned if the insert failed; remove them.
		uploads.Cleanup(ctx, h.Storage, h.Log, paths...)
		h.ErrLog.LogServerError(w, r, "database error creating project", err, "Could not save the project.", "/admin/projects")
		return
	}

	h.Log.Info("project created", zap.String("name", p.Name))
	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// ServeEdit handles GET /admin/projects/{id}/edit.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad project id", err, "Invalid project link.", "/admin/projects")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := projectstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "project not found", err, "That project does not exist.", "/admin/projects")
		return
	}

	data := projectFormVM{
		BaseVM:       viewdata.NewBaseVM(r, "Edit Project", "/admin/projects"),
		Project:      p,
		Technologies: strings.Join(p.Technologies, ", "),
		TeamMembers:  formatTeamMembers(p.TeamMembers),
		IsEdit:       true,
	}
	templates.Render(w, r, "projects_form", data)
}

// HandleEdit handles POST /admin/projects/{id}/edit.
//
// Newly uploaded images are appended to the project's existing set;
// individual images are removed with HandleDeleteImage.
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad project id", err, "Invalid project link.", "/admin/projects")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 32<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/projects")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := projectstore.New(h.DB)
	existing, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "project not found", err, "That project does not exist.", "/admin/projects")
		return
	}

	p := projectFromForm(r)

	reRender := func(msg string) {
		p.ID = id
		data := projectFormVM{
			BaseVM:       viewdata.NewBaseVM(r, "Edit Project", "/admin/projects"),
			Project:      p,
			Technologies: r.FormValue("technologies"),
			TeamMembers:  r.FormValue("team_members"),
			IsEdit:       true,
			Message:      msg,
		}
		templates.Render(w, r, "projects_form", data)
	}

	if result := inputval.Validate(projectInput{Name: p.Name}); result.HasErrors() {
		reRender(result.First())
		return
	}

	newPaths, ok := h.uploadImages(r, &p, reRender)
	if !ok {
		return
	}
	p.Images = append(append([]string{}, existing.Images...), p.Images...)
	p.ImagePaths = append(append([]string{}, existing.ImagePaths...), p.ImagePaths...)

	if err := store.Update(ctx, id, p); err != nil {
		uploads.Cleanup(ctx, h.Storage, h.Log, newPaths...)
		h.ErrLog.LogServerError(w, r, "database error updating project", err, "Could not save the project.", "/admin/projects")
		return
	}

	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// HandleDeleteImage handles POST /admin/projects/{id}/images/delete.
// The image to remove is identified by its storage path.
func (h *AdminHandler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad project id", err, "Invalid project link.", "/admin/projects")
		return
	}

	path := strings.TrimSpace(r.FormValue("path"))
	if path == "" {
		h.ErrLog.LogBadRequest(w, r, "missing image path", nil, "No image selected.", "/admin/projects")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := projectstore.New(h.DB)
	p, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "project not found", err, "That project does not exist.", "/admin/projects")
		return
	}

	var keptURLs, keptPaths []string
	for i, sp := range p.ImagePaths {
		if sp == path {
			continue
		}
		keptPaths = append(keptPaths, sp)
		if i < len(p.Images) {
			keptURLs = append(keptURLs, p.Images[i])
		}
	}
	p.Images = keptURLs
	p.ImagePaths = keptPaths
	if p.Images == nil {
		p.Images = []string{}
	}

	if err := store.Update(ctx, id, p); err != nil {
		h.ErrLog.LogServerError(w, r, "database error updating project", err, "Could not remove the image.", "/admin/projects")
		return
	}
	uploads.Cleanup(ctx, h.Storage, h.Log, path)

	http.Redirect(w, r, "/admin/projects/"+id.Hex()+"/edit", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/projects/{id}/delete.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad project id", err, "Invalid project link.", "/admin/projects")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := projectstore.New(h.DB)
	p, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "project not found", err, "That project does not exist.", "/admin/projects")
		return
	}

	if _, err := store.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting project", err, "Could not delete the project.", "/admin/projects")
		return
	}
	// Remove the image blobs once the record is gone.
	uploads.Cleanup(ctx, h.Storage, h.Log, p.ImagePaths...)

	http.Redirect(w, r, "/admin/projects", http.StatusSeeOther)
}

// projectFromForm builds a Project from the posted form fields.
func projectFromForm(r *http.Request) models.Project {
	return models.Project{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Description:  htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description"))),
		Date:         strings.TrimSpace(r.FormValue("date")),
		GitHub:       strings.TrimSpace(r.FormValue("github")),
		Link:         strings.TrimSpace(r.FormValue("link")),
		Progress:     strings.TrimSpace(r.FormValue("progress")),
		Category:     strings.TrimSpace(r.FormValue("category")),
		Status:       strings.TrimSpace(r.FormValue("status")),
		Technologies: parseTechnologies(r.FormValue("technologies")),
		TeamMembers:  parseTeamMembers(r.FormValue("team_members")),
	}
}

// parseTechnologies splits a comma separated list, dropping blanks.
func parseTechnologies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseTeamMembers reads one member per line, "Name | linkedin-id"
// with the linkedin part optional.
func parseTeamMembers(s string) []models.ProjectMember {
	var out []models.ProjectMember
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, linkedin, _ := strings.Cut(line, "|")
		m := models.ProjectMember{
			Member:     strings.TrimSpace(name),
			LinkedinID: strings.TrimSpace(linkedin),
		}
		if m.Member != "" {
			out = append(out, m)
		}
	}
	return out
}

// formatTeamMembers is the inverse of parseTeamMembers, for the edit form.
func formatTeamMembers(members []models.ProjectMember) string {
	var b strings.Builder
	for _, m := range members {
		b.WriteString(m.Member)
		if m.LinkedinID != "" {
			b.WriteString(" | ")
			b.WriteString(m.LinkedinID)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// uploadImages stores every file sent under the "images" field and
// fills the project's image URL and path slices. Returns the new
// storage paths and whether the caller should continue.
func (h *AdminHandler) uploadImages(r *http.Request, p *models.Project, reRender func(string)) ([]string, bool) {
	if r.MultipartForm == nil {
		return nil, true
	}
	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		return nil, true
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var paths []string
	for _, header := range files {
		if header.Size == 0 {
			continue
		}
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if !strings.HasPrefix(contentType, "image/") {
			uploads.Cleanup(ctx, h.Storage, h.Log, paths...)
			reRender("Project images must be image files.")
			return nil, false
		}

		file, err := header.Open()
		if err != nil {
			uploads.Cleanup(ctx, h.Storage, h.Log, paths...)
			h.Log.Error("open uploaded image failed", zap.Error(err))
			reRender("Failed to read an uploaded image. Please try again.")
			return nil, false
		}

		info, err := uploads.Upload(ctx, h.Storage, "projects", header.Filename, file, header.Size, contentType)
		file.Close()
		if err != nil {
			uploads.Cleanup(ctx, h.Storage, h.Log, paths...)
			h.Log.Error("project image upload failed", zap.Error(err))
			reRender("Failed to upload an image. Please try again.")
			return nil, false
		}

		paths = append(paths, info.Path)
		p.ImagePaths = append(p.ImagePaths, info.Path)
		p.Images = append(p.Images, h.Storage.URL(info.Path))
	}
	return paths, true
}
