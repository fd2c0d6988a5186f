// internal/app/features/team/views/views.go
package team

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "team",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
