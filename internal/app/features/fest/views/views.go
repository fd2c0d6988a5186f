// internal/app/features/fest/views/views.go
package fest

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var files embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "fest",
		FS:       files,
		Patterns: []string{"templates/*.gohtml"},
	})
}
