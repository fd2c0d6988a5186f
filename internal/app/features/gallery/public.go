// internal/app/features/gallery/public.go
package gallery

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	gallerystore "github.com/roboticsclub/robohub/internal/app/store/gallery"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
)

type galleryItemVM struct {
	models.GalleryItem
	IsVideo bool
}

type galleryVM struct {
	viewdata.BaseVM
	Items []galleryItemVM
}

func toItemVMs(items []models.GalleryItem) []galleryItemVM {
	out := make([]galleryItemVM, 0, len(items))
	for _, it := range items {
		out = append(out, galleryItemVM{
			GalleryItem: it,
			IsVideo:     strings.HasPrefix(it.ContentType, "video/"),
		})
	}
	return out
}

// ServePage handles GET /gallery, newest uploads first.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := gallerystore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading gallery", err, "Could not load the gallery.", "/")
		return
	}

	data := galleryVM{
		BaseVM: viewdata.NewBaseVM(r, "Gallery", "/"),
		Items:  toItemVMs(items),
	}
	templates.Render(w, r, "gallery_page", data)
}
