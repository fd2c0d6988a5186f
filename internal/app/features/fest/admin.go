// internal/app/features/fest/admin.go
package fest

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	festappstore "github.com/roboticsclub/robohub/internal/app/store/festapps"
	"github.com/roboticsclub/robohub/internal/app/system/csvutil"
	"github.com/roboticsclub/robohub/internal/app/system/derive"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appRowVM struct {
	models.FestApplication
	Duplicate bool
}

type adminAppsVM struct {
	viewdata.BaseVM
	Apps     []appRowVM
	Total    int
	Status   string
	Search   string
	Statuses []string
}

// filterApps applies the review-list filters: status, search, then
// newest first.
func filterApps(apps []models.FestApplication, status, search string) []models.FestApplication {
	if models.IsValidFestStatus(status) {
		apps = derive.FilterStatus(apps, status, func(a models.FestApplication) string { return a.Status })
	}
	if search != "" {
		apps = derive.Search(apps, search, func(a models.FestApplication) string {
			return a.Name + " " + a.Email + " " + a.EnrollmentNumber + " " + a.TeamPreference1 + " " + a.TeamPreference2
		})
	}
	return derive.SortByTimestampDesc(apps, func(a models.FestApplication) int64 { return a.SubmittedTimestamp })
}

// ServeAdminList handles GET /admin/fest with ?status= and ?q= filters.
func (h *AdminHandler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := festappstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading fest applications", err, "Could not load applications.", "/admin")
		return
	}

	status := query.Get(r, "status")
	search := query.Get(r, "q")

	filtered := filterApps(all, status, search)
	dupSet := derive.DuplicateEmails(all, func(a models.FestApplication) string { return a.Email })

	rows := make([]appRowVM, 0, len(filtered))
	for _, a := range filtered {
		rows = append(rows, appRowVM{FestApplication: a, Duplicate: dupSet[a.Email]})
	}

	data := adminAppsVM{
		BaseVM:   viewdata.NewBaseVM(r, "Fest Applications", "/admin"),
		Apps:     rows,
		Total:    len(all),
		Status:   status,
		Search:   search,
		Statuses: models.FestStatuses,
	}
	templates.Render(w, r, "fest_admin_list", data)
}

// HandleSetStatus handles POST /admin/fest/{id}/status, moving an
// application through the review pipeline.
func (h *AdminHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad application id", err, "Invalid link.", "/admin/fest")
		return
	}

	status := strings.TrimSpace(r.FormValue("status"))
	if !models.IsValidFestStatus(status) {
		h.ErrLog.LogBadRequest(w, r, "bad application status", nil, "Invalid review status.", "/admin/fest")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := festappstore.New(h.DB).SetStatus(ctx, id, status); err != nil {
		h.ErrLog.LogNotFound(w, r, "fest application not found", err, "That application does not exist.", "/admin/fest")
		return
	}

	h.Log.Info("fest application reviewed", zap.String("application", id.Hex()), zap.String("status", status))
	http.Redirect(w, r, "/admin/fest", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/fest/{id}/delete.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad application id", err, "Invalid link.", "/admin/fest")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := festappstore.New(h.DB).Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting fest application", err, "Could not delete the application.", "/admin/fest")
		return
	}

	http.Redirect(w, r, "/admin/fest", http.StatusSeeOther)
}

// HandleExportCSV handles GET /admin/fest/export.csv with the list
// filters applied.
func (h *AdminHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	all, err := festappstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading fest applications", err, "Could not export applications.", "/admin/fest")
		return
	}

	filtered := filterApps(all, query.Get(r, "status"), query.Get(r, "q"))

	header := []string{"Name", "Email", "Contact", "Preference 1", "Preference 2", "Department", "Year", "Status"}
	rows := make([][]string, 0, len(filtered))
	for _, a := range filtered {
		rows = append(rows, []string{
			a.Name, a.Email, a.ContactNumber,
			a.TeamPreference1, a.TeamPreference2,
			a.DepartmentName, a.YearOfStudy, a.Status,
		})
	}

	if err := csvutil.WriteDownload(w, "fest_applications.csv", header, rows); err != nil {
		h.Log.Error("csv export failed", zap.Error(err))
	}
}
