// internal/app/features/team/public.go
package team

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	teamstore "github.com/roboticsclub/robohub/internal/app/store/teams"
	"github.com/roboticsclub/robohub/internal/app/system/timeouts"
	"github.com/roboticsclub/robohub/internal/app/system/viewdata"
	"github.com/roboticsclub/robohub/internal/domain/models"
)

type rosterVM struct {
	viewdata.BaseVM
	Team     models.Team
	Years    []string
	HasTeam  bool
	Selected string
}

// ServeRoster handles GET /team with an optional ?year= filter.
// Without a year parameter the newest roster is shown.
func (h *Handler) ServeRoster(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	teams, err := teamstore.New(h.DB).GetAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error loading rosters", err, "Could not load the team page.", "/")
		return
	}

	years := make([]string, 0, len(teams))
	for _, t := range teams {
		years = append(years, t.Year)
	}

	data := rosterVM{
		BaseVM: viewdata.NewBaseVM(r, "Team", "/"),
		Years:  years,
	}

	want := query.Get(r, "year")
	for _, t := range teams {
		if want == "" || t.Year == want {
			data.Team = t
			data.HasTeam = true
			data.Selected = t.Year
			break
		}
	}

	templates.Render(w, r, "team_roster", data)
}
