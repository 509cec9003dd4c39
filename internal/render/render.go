// Package render turns page state into HTML. It only consumes models and
// knows nothing about how the data was fetched.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/showfinder/showfinder/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data rendered by Renderer.Page.
type Page struct {
	View  models.View
	Error string
}

// Renderer renders the show browser page and its fragments.
type Renderer struct {
	tmpl *template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// Show summaries come from the metadata API as markup and are
		// displayed without modification.
		"markup": func(s string) template.HTML {
			return template.HTML(s)
		},
		"showName": func(v models.View) string {
			if s, ok := v.SelectedShow(); ok {
				return s.Name
			}
			return ""
		},
	}
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("render").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page writes the full page.
func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.execute(w, "page", p)
}

// Shows writes the show list fragment (#showsList).
func (r *Renderer) Shows(w io.Writer, shows []models.Show) error {
	return r.execute(w, "shows", shows)
}

// Episodes writes the episodes area fragment (#episodesArea).
func (r *Renderer) Episodes(w io.Writer, view models.View) error {
	return r.execute(w, "episodes", view)
}

// execute renders into a buffer first so that a template error never
// leaves a half-written page behind.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
