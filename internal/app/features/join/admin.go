// internal/app/features/join/admin.go
package join

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	memberstore "github.com/roboticsclub/robohub/internal/app/store/members"
	"github.com/roboticsclub/robohub/internal/app/system/csvutil"
	"github.com/roboticsclub/robohub/internal/app/system/derive"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memberRowVM struct {
	models.Member
	Duplicate bool
}

type adminMembersVM struct {
	viewdata.BaseVM
	Members    []memberRowVM
	Total      int
	Paid       string // "" | "paid" | "unpaid"
	Search     string
	Duplicates bool
}

// filterMembers applies the review-list filters in a fixed order:
// payment status, search, duplicates toggle, then newest first.
func filterMembers(members []models.Member, paid, search string, dupsOnly bool) []models.Member {
	if paid == "paid" || paid == "unpaid" {
		members = derive.FilterStatus(members, paid, func(m models.Member) string {
			if m.PaymentStatus {
				return "paid"
			}
			return "unpaid"
		})
	}
	if search != "" {
		members = derive.Search(members, search, func(m models.Member) string {
			return m.Name + " " + m.Email + " " + m.EnrollmentNumber + " " + m.FacultyNumber
		})
	}
	if dupsOnly {
		members = derive.DuplicatesOnly(members, func(m models.Member) string { return m.Email })
	}
	return derive.SortByTimestampDesc(members, func(m models.Member) int64 { return m.SubmittedTimestamp })
}

// ServeAdminList handles GET /admin/members with ?paid=, ?q= and
// ?duplicates= filters.
func (h *AdminHandler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := memberstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading members", err, "Could not load applications.", "/admin")
		return
	}

	paid := query.Get(r, "paid")
	search := query.Get(r, "q")
	dupsOnly, _ := strconv.ParseBool(query.Get(r, "duplicates"))

	filtered := filterMembers(all, paid, search, dupsOnly)
	dupSet := derive.DuplicateEmails(all, func(m models.Member) string { return m.Email })

	rows := make([]memberRowVM, 0, len(filtered))
	for _, m := range filtered {
		rows = append(rows, memberRowVM{Member: m, Duplicate: dupSet[m.Email]})
	}

	data := adminMembersVM{
		BaseVM:     viewdata.NewBaseVM(r, "Membership Applications", "/admin"),
		Members:    rows,
		Total:      len(all),
		Paid:       paid,
		Search:     search,
		Duplicates: dupsOnly,
	}
	templates.Render(w, r, "join_admin_list", data)
}

// HandleSetPayment handles POST /admin/members/{id}/payment, toggling
// the reviewed payment flag.
func (h *AdminHandler) HandleSetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad member id", err, "Invalid link.", "/admin/members")
		return
	}

	paid := r.FormValue("paid") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := memberstore.New(h.DB).SetPaymentStatus(ctx, id, paid); err != nil {
		h.ErrLog.LogNotFound(w, r, "member not found", err, "That application does not exist.", "/admin/members")
		return
	}

	h.Log.Info("payment status updated", zap.String("member", id.Hex()), zap.Bool("paid", paid))
	http.Redirect(w, r, "/admin/members", http.StatusSeeOther)
}

// HandleDelete handles POST /admin/members/{id}/delete.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad member id", err, "Invalid link.", "/admin/members")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := memberstore.New(h.DB).Delete(ctx, id); err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting member", err, "Could not delete the application.", "/admin/members")
		return
	}

	http.Redirect(w, r, "/admin/members", http.StatusSeeOther)
}

// HandleExportCSV handles GET /admin/members/export.csv. The same
// filters as the list apply, so the download matches what is on screen.
func (h *AdminHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	all, err := memberstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading members", err, "Could not export applications.", "/admin/members")
		return
	}

	paid := query.Get(r, "paid")
	search := query.Get(r, "q")
	dupsOnly, _ := strconv.ParseBool(query.Get(r, "duplicates"))
	filtered := filterMembers(all, paid, search, dupsOnly)

	header := []string{"Name", "Email", "Mobile", "Course", "Enrollment Number", "Faculty Number", "Discord", "Payment Status"}
	rows := make([][]string, 0, len(filtered))
	for _, m := range filtered {
		status := "unpaid"
		if m.PaymentStatus {
			status = "paid"
		}
		rows = append(rows, []string{
			m.Name, m.Email, m.Mobile, m.Course,
			m.EnrollmentNumber, m.FacultyNumber, m.DiscordID, status,
		})
	}

	if err := csvutil.WriteDownload(w, "members.csv", header, rows); err != nil {
		h.Log.Error("csv export failed", zap.Error(err))
	}
}
