package render

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path/filepath"

	"github.com/labstack/echo"

	"grant-management-portal/internal/entity"
)

// Renderer plugs html/template page files into echo. Each page template is named
// after its file.
type Renderer struct {
	templates *template.Template
}

func New(dir string) (*Renderer, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"errorFor": errorFor,
		"valueFor": valueFor,
		"contains": contains,
		"list":     list,
		"at":       at,
	}).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parsing templates in %s: %w", dir, err)
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// errorFor finds the message attached to one on-screen field, for inline errors.
func errorFor(fieldErrors []entity.FieldError, fieldName string) string {
	for _, fe := range fieldErrors {
		if fe.FieldName == fieldName {
			return fe.ErrorMessage
		}
	}

	return ""
}

// valueFor echoes a previously entered value back into its input.
func valueFor(values url.Values, fieldName string) string {
	if values == nil {
		return ""
	}

	return values.Get(fieldName)
}

func list(values ...string) []string {
	return values
}

// at reads one position of a multiResponse without panicking on short slices.
func at(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}

	return values[i]
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}
