// Package web renders the résumé page. Rendering is a pure function of the
// document and the session state: two calls with equal inputs produce
// identical bytes.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jonathan/resume-site/internal/resume"
	"github.com/jonathan/resume-site/internal/session"
)

//go:embed page.html.tmpl
var templateFS embed.FS

// PageData is the template input for the résumé page.
type PageData struct {
	Doc     *resume.Document
	Session session.State
}

// Renderer renders the résumé page from a parsed template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page for the given document and session state.
func (r *Renderer) Render(w io.Writer, doc *resume.Document, state session.State) error {
	if err := r.tmpl.Execute(w, PageData{Doc: doc, Session: state}); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
