// internal/app/features/admin/home.go
package admin

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
)

// section is one entry on the back-office landing page.
type section struct {
	Title string
	URL   string
	Blurb string
}

type adminHomeVM struct {
	viewdata.BaseVM
	Sections []section
}

// adminSections lists the back-office surfaces in display order.
var adminSections = []section{
	{Title: "Events", URL: "/admin/events", Blurb: "Create and schedule club events, upload posters."},
	{Title: "Projects", URL: "/admin/projects", Blurb: "Showcase projects with images, tech stacks and teams."},
	{Title: "Featured Projects", URL: "/admin/landing", Blurb: "The capped set of projects shown on the home page."},
	{Title: "Team Rosters", URL: "/admin/team", Blurb: "Year-wise team rosters and member details."},
	{Title: "Faculty", URL: "/admin/faculty", Blurb: "Patrons, advisors and faculty in-charge."},
	{Title: "Gallery", URL: "/admin/gallery", Blurb: "Photos and videos from club activities."},
	{Title: "Membership Applications", URL: "/admin/members", Blurb: "Review join applications and payment status."},
	{Title: "Fest Applications", URL: "/admin/fest", Blurb: "Review fest organizing team applications."},
	{Title: "Document Editor", URL: "/admin/editor", Blurb: "Raw field-level editing of any collection."},
}

// ServeHome handles GET /admin.
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	data := adminHomeVM{
		BaseVM:   viewdata.NewBaseVM(r, "Admin", "/"),
		Sections: adminSections,
	}
	templates.Render(w, r, "admin_home", data)
}
