// internal/app/features/join/views/views.go
package join

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "join",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
