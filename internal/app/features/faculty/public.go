// internal/app/features/faculty/public.go
package faculty

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	facultystore "github.com/roboticsclub/robohub/internal/app/store/faculty"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
)

type facultyVM struct {
	viewdata.BaseVM
	Patrons   []models.Faculty
	Advisors  []models.Faculty
	Incharges []models.Faculty
}

// ServePage handles GET /faculty, grouped by category.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	byCat, err := facultystore.New(h.DB).GetByCategory(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading faculty", err, "Could not load the faculty page.", "/")
		return
	}

	data := facultyVM{
		BaseVM:    viewdata.NewBaseVM(r, "Faculty", "/"),
		Patrons:   byCat[models.FacultyPatron],
		Advisors:  byCat[models.FacultyAdvisor],
		Incharges: byCat[models.FacultyIncharge],
	}
	templates.Render(w, r, "faculty_page", data)
}
