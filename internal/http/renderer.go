package httpx

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates
var templateFS embed.FS

// TemplateRenderer renders HTML templates for UI responses.
//
// Every page template under templates/pages defines a "content" block; the
// renderer pairs each with the shared layout at startup so a missing or
// broken template fails at boot, not on first request.
type TemplateRenderer struct {
	pages  map[string]*template.Template
	errTpl *template.Template
	logger *slog.Logger
}

// NewTemplateRenderer parses the embedded layout and page templates.
func NewTemplateRenderer(logger *slog.Logger) (*TemplateRenderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("template sub-filesystem: %w", err)
	}
	return newTemplateRendererFromFS(sub, logger)
}

func newTemplateRendererFromFS(fsys fs.FS, logger *slog.Logger) (*TemplateRenderer, error) {
	layout, err := template.ParseFS(fsys, "layout.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageTemplates))
	for page, file := range pageTemplates {
		clone, cloneErr := layout.Clone()
		if cloneErr != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", page, cloneErr)
		}
		t, parseErr := clone.ParseFS(fsys, "pages/"+file)
		if parseErr != nil {
			return nil, fmt.Errorf("parse page %s: %w", file, parseErr)
		}
		pages[page] = t
	}

	errTpl, err := template.ParseFS(fsys, "error.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse error template: %w", err)
	}

	return &TemplateRenderer{pages: pages, errTpl: errTpl, logger: logger}, nil
}

// RenderPage renders a full page (layout + content) for the given CurrentPage.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, page string, data map[string]any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("no template registered for page %q", page)
	}
	return r.execute(w, t, "layout", data)
}

// RenderError renders the standalone error page.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, status int, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.errTpl.ExecuteTemplate(w, "error-layout", data); err != nil {
		r.logTemplateError("error-layout", err)
	}
}

// execute buffers the render so a template failure never leaves a half-written
// page on the wire.
func (r *TemplateRenderer) execute(w http.ResponseWriter, t *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		r.logTemplateError(name, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		r.logTemplateError(name, err)
		return err
	}
	return nil
}

func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}
