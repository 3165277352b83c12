package server

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer projects a template name plus context onto an HTML
// document, satisfying echo.Renderer.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses all templates under dir.
func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	templates, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &TemplateRenderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
