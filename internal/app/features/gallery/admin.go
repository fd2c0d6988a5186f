// internal/app/features/gallery/admin.go
package gallery

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	gallerystore "github.com/roboticsclub/robohub/internal/app/store/gallery"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/uploads"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// maxUploadBytes caps one multipart upload request across all files.
const maxUploadBytes = 64 << 20

type adminGalleryVM struct {
	viewdata.BaseVM
	Items   []galleryItemVM
	Message string
}

// ServeAdminList handles GET /admin/gallery.
func (h *AdminHandler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	h.renderAdminList(w, r, "")
}

func (h *AdminHandler) renderAdminList(w http.ResponseWriter, r *http.Request, msg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := gallerystore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading gallery", err, "Could not load the gallery.", "/admin")
		return
	}

	data := adminGalleryVM{
		BaseVM:  viewdata.NewBaseVM(r, "Manage Gallery", "/admin"),
		Items:   toItemVMs(items),
		Message: msg,
	}
	templates.Render(w, r, "gallery_admin_list", data)
}

// HandleUpload handles POST /admin/gallery. Multiple files may be sent
// in one request; each becomes its own gallery item sharing the posted
// caption and event name.
func (h *AdminHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	// 64MB across files; galleries take videos as well as photos.
	// MaxBytesReader bounds the whole body, not just in-memory buffering.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if err.Error() == "http: request body too large" {
			h.ErrLog.LogBadRequest(w, r, "request too large", err, "Upload is too large. Maximum size is 64 MB.", "/admin/gallery")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/gallery")
		return
	}

	caption := strings.TrimSpace(r.FormValue("caption"))
	eventName := strings.TrimSpace(r.FormValue("event_name"))

	files := r.MultipartForm.File["media"]
	if len(files) == 0 {
		h.renderAdminList(w, r, "Choose at least one file to upload.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	store := gallerystore.New(h.DB)
	var stored []string
	for _, header := range files {
		if header.Size == 0 {
			continue
		}
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
			uploads.Cleanup(ctx, h.Storage, h.Log, stored...)
			h.renderAdminList(w, r, "Gallery uploads must be images or videos.")
			return
		}

		file, err := header.Open()
		if err != nil {
			uploads.Cleanup(ctx, h.Storage, h.Log, stored...)
			h.ErrLog.LogServerError(w, r, "open uploaded media failed", err, "Could not read an uploaded file.", "/admin/gallery")
			return
		}

		info, err := uploads.Upload(ctx, h.Storage, "gallery", header.Filename, file, header.Size, contentType)
		file.Close()
		if err != nil {
			uploads.Cleanup(ctx, h.Storage, h.Log, stored...)
			h.ErrLog.LogServerError(w, r, "gallery upload failed", err, "Could not upload a file.", "/admin/gallery")
			return
		}
		stored = append(stored, info.Path)

		item := models.GalleryItem{
			Caption:     caption,
			Path:        info.Path,
			URL:         h.Storage.URL(info.Path),
			FileName:    info.FileName,
			ContentType: info.ContentType,
			Size:        info.Size,
			EventName:   eventName,
		}
		if _, err := store.Create(ctx, item); err != nil {
			uploads.Cleanup(ctx, h.Storage, h.Log, stored...)
			h.ErrLog.LogServerError(w, r, "database error creating gallery item", err, "Could not save an uploaded file.", "/admin/gallery")
			return
		}
	}

	h.Log.Info("gallery upload", zap.Int("files", len(stored)))
	http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
}

// HandleUpdateCaption handles POST /admin/gallery/{id}/caption.
func (h *AdminHandler) HandleUpdateCaption(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad gallery item id", err, "Invalid link.", "/admin/gallery")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	caption := strings.TrimSpace(r.FormValue("caption"))
	eventName := strings.TrimSpace(r.FormValue("event_name"))

	if err := gallerystore.New(h.DB).UpdateCaption(ctx, id, caption, eventName); err != nil {
		h.ErrLog.LogNotFound(w, r, "gallery item not found", err, "That item does not exist.", "/admin/gallery")
		return
	}

	http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/gallery/{id}/delete.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad gallery item id", err, "Invalid link.", "/admin/gallery")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := gallerystore.New(h.DB)
	item, err := store.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "gallery item not found", err, "That item does not exist.", "/admin/gallery")
		return
	}

	if _, err := store.Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting gallery item", err, "Could not delete the item.", "/admin/gallery")
		return
	}
	// Remove the blob once the record is gone.
	uploads.Cleanup(ctx, h.Storage, h.Log, item.Path)

	http.Redirect(w, r, "/admin/gallery", http.StatusSeeOther)
}
