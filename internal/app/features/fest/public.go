// internal/app/features/fest/public.go
package fest

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	festappstore "github.com/roboticsclub/robohub/internal/app/store/festapps"
	"github.com/roboticsclub/robohub/internal/app/system/inputval"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
	"go.uber.org/zap"
)

// FestTeams are the organizing teams applicants can choose from.
var FestTeams = []string{
	"Events",
	"Technical",
	"Design",
	"Media & Publicity",
	"Sponsorship",
	"Logistics",
}

// festInput defines validation rules for the fest application form.
type festInput struct {
	Name        string `validate:"required,max=200" label:"Name"`
	Email       string `validate:"required,email" label:"Email"`
	Preference1 string `validate:"required" label:"First team preference"`
}

type festFormVM struct {
	viewdata.BaseVM
	App            models.FestApplication
	Teams          []string
	CaptchaEnabled bool
	Message        string
	Submitted      bool
}

// ServeForm handles GET /fest.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := festFormVM{
		BaseVM:         viewdata.NewBaseVM(r, "Fest Team Application", "/"),
		Teams:          FestTeams,
		CaptchaEnabled: h.Captcha.Enabled(),
	}
	templates.Render(w, r, "fest_form", data)
}

// HandleSubmit handles POST /fest. Duplicate submissions are accepted
// on purpose; reviewers see repeats in the admin list.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/fest")
		return
	}

	a := festAppFromForm(r)

	reRender := func(msg string) {
		data := festFormVM{
			BaseVM:         viewdata.NewBaseVM(r, "Fest Team Application", "/"),
			App:            a,
			Teams:          FestTeams,
			CaptchaEnabled: h.Captcha.Enabled(),
			Message:        msg,
		}
		templates.Render(w, r, "fest_form", data)
	}

	if result := inputval.Validate(festInput{Name: a.Name, Email: a.Email, Preference1: a.TeamPreference1}); result.HasErrors() {
		reRender(result.First())
		return
	}
	if a.TeamPreference1 == a.TeamPreference2 {
		reRender("Your two team preferences must be different.")
		return
	}

	if h.Captcha.Enabled() {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		err := h.Captcha.Verify(ctx, r.FormValue("captcha_token"), r.RemoteAddr)
		cancel()
		if err != nil {
			h.Log.Warn("captcha verification failed", zap.Error(err))
			reRender("Human verification failed. Please try again.")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := festappstore.New(h.DB).Create(ctx, a); err != nil {
		h.ErrLog.LogServerError(w, r, "database error creating fest application", err, "Could not submit your application.", "/fest")
		return
	}

	h.Log.Info("fest application received", zap.String("email", a.Email))

	data := festFormVM{
		BaseVM:    viewdata.NewBaseVM(r, "Application Received", "/"),
		Teams:     FestTeams,
		Submitted: true,
	}
	templates.Render(w, r, "fest_form", data)
}

// festAppFromForm builds a FestApplication from the posted form fields.
func festAppFromForm(r *http.Request) models.FestApplication {
	return models.FestApplication{
		Name:               strings.TrimSpace(r.FormValue("name")),
		Email:              strings.TrimSpace(r.FormValue("email")),
		ContactNumber:      strings.TrimSpace(r.FormValue("contact_number")),
		TeamPreference1:    strings.TrimSpace(r.FormValue("team_preference_1")),
		TeamPreference2:    strings.TrimSpace(r.FormValue("team_preference_2")),
		WhyApplying:        strings.TrimSpace(r.FormValue("why_applying")),
		PreviousExperience: strings.TrimSpace(r.FormValue("previous_experience")),
		CVResumeLink:       strings.TrimSpace(r.FormValue("cv_resume_link")),
		DepartmentName:     strings.TrimSpace(r.FormValue("department_name")),
		FacultyName:        strings.TrimSpace(r.FormValue("faculty_name")),
		FacultyNumber:      strings.TrimSpace(r.FormValue("faculty_number")),
		EnrollmentNumber:   strings.TrimSpace(r.FormValue("enrollment_number")),
		YearOfStudy:        strings.TrimSpace(r.FormValue("year_of_study")),
	}
}
