// internal/app/features/faculty/admin.go
package faculty

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	facultystore "github.com/roboticsclub/robohub/internal/app/store/faculty"
	"github.com/roboticsclub/robohub/internal/app/system/inputval"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/uploads"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// facultyInput defines validation rules for the admin faculty form.
type facultyInput struct {
	Name     string `validate:"required,max=200" label:"Name"`
	Category string `validate:"required,oneof=advisor incharge patron" label:"Category"`
}

type adminListVM struct {
	viewdata.BaseVM
	Faculty []models.Faculty
}

type facultyFormVM struct {
	viewdata.BaseVM
	Faculty models.Faculty
	IsEdit  bool
	Message string
}

// ServeAdminList handles GET /admin/faculty.
func (h *AdminHandler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	fac, err := facultystore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading faculty", err, "Could not load faculty.", "/admin")
		return
	}

	data := adminListVM{
		BaseVM:  viewdata.NewBaseVM(r, "Manage Faculty", "/admin"),
		Faculty: fac,
	}
	templates.Render(w, r, "faculty_admin_list", data)
}

// ServeNew handles GET /admin/faculty/new.
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := facultyFormVM{
		BaseVM: viewdata.NewBaseVM(r, "New Faculty", "/admin/faculty"),
	}
	templates.Render(w, r, "faculty_form", data)
}

// HandleCreate handles POST /admin/faculty.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/faculty")
		return
	}

	f := facultyFromForm(r)

	reRender := func(msg string) {
		data := facultyFormVM{
			BaseVM:  viewdata.NewBaseVM(r, "New Faculty", "/admin/faculty"),
			Faculty: f,
			Message: msg,
		}
		templates.Render(w, r, "faculty_form", data)
	}

	if result := inputval.Validate(facultyInput{Name: f.Name, Category: f.Category}); result.HasErrors() {
		reRender(result.First())
		return
	}

	imagePath, ok := h.uploadPortrait(r, &f, reRender)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := facultystore.New(h.DB).Create(ctx, f); err != nil {
		uploads.Cleanup(ctx, h.Storage, h.Log, imagePath)
		h.ErrLog.LogServerError(w, r, "database error creating faculty", err, "Could not save the entry.", "/admin/faculty")
		return
	}

	h.Log.Info("faculty created", zap.String("name", f.Name), zap.String("category", f.Category))
	http.Redirect(w, r, "/admin/faculty", http.StatusSeeOther)
}

// ServeEdit handles GET /admin/faculty/{id}/edit.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad faculty id", err, "Invalid link.", "/admin/faculty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	f, err := facultystore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "faculty not found", err, "That entry does not exist.", "/admin/faculty")
		return
	}

	data := facultyFormVM{
		BaseVM:  viewdata.NewBaseVM(r, "Edit Faculty", "/admin/faculty"),
		Faculty: f,
		IsEdit:  true,
	}
	templates.Render(w, r, "faculty_form", data)
}

// HandleEdit handles POST /admin/faculty/{id}/edit.
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad faculty id", err, "Invalid link.", "/admin/faculty")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16<<20)
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/faculty")
		return
	}

	f := facultyFromForm(r)

	reRender := func(msg string) {
		f.ID = id
		data := facultyFormVM{
			BaseVM:  viewdata.NewBaseVM(r, "Edit Faculty", "/admin/faculty"),
			Faculty: f,
			IsEdit:  true,
			Message: msg,
		}
		templates.Render(w, r, "faculty_form", data)
	}

	if result := inputval.Validate(facultyInput{Name: f.Name, Category: f.Category}); result.HasErrors() {
		reRender(result.First())
		return
	}

	imagePath, ok := h.uploadPortrait(r, &f, reRender)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := facultystore.New(h.DB).Update(ctx, id, f); err != nil {
		uploads.Cleanup(ctx, h.Storage, h.Log, imagePath)
		h.ErrLog.LogServerError(w, r, "database error updating faculty", err, "Could not save the entry.", "/admin/faculty")
		return
	}

	http.Redirect(w, r, "/admin/faculty", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/faculty/{id}/delete.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad faculty id", err, "Invalid link.", "/admin/faculty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := facultystore.New(h.DB)
	f, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "faculty not found", err, "That entry does not exist.", "/admin/faculty")
		return
	}

	if _, err := store.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting faculty", err, "Could not delete the entry.", "/admin/faculty")
		return
	}
	uploads.Cleanup(ctx, h.Storage, h.Log, f.ImagePath)

	http.Redirect(w, r, "/admin/faculty", http.StatusSeeOther)
}

// facultyFromForm builds a Faculty from the posted form fields.
func facultyFromForm(r *http.Request) models.Faculty {
	return models.Faculty{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Department:  strings.TrimSpace(r.FormValue("department")),
		Designation: strings.TrimSpace(r.FormValue("designation")),
		Category:    strings.TrimSpace(r.FormValue("category")),
	}
}

// uploadPortrait stores the optional portrait and fills the entry's
// image fields. Returns the new storage path ("" when no file was
// sent) and whether the caller should continue.
func (h *AdminHandler) uploadPortrait(r *http.Request, f *models.Faculty, reRender func(string)) (string, bool) {
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
		reRender("Portrait must be an image file.")
		return "", false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	info, err := uploads.Upload(ctx, h.Storage, "faculty", header.Filename, file, header.Size, contentType)
	if err != nil {
		h.Log.Error("portrait upload failed", zap.Error(err))
		reRender("Failed to upload the portrait. Please try again.")
		return "", false
	}

	f.ImagePath = info.Path
	f.Image = h.Storage.URL(info.Path)
	return info.Path, true
}
