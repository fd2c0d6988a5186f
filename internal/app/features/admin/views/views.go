// internal/app/features/admin/views/views.go
package admin

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var files embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "admin",
		FS:       files,
		Patterns: []string{"templates/*.gohtml"},
	})
}
